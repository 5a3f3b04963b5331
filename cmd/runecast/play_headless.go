//go:build !cgo

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the drawing pad (needs a cgo build)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return errors.New("the drawing pad requires a cgo build with raylib; use `runecast trainer` instead")
		},
	}
}
