package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "runecast", "config.toml")
}

func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), "runecast", "runecast.db")
}

func DefaultSoundDir() string {
	return filepath.Join(XDGDataHome(), "runecast", "sounds")
}

func DefaultRecordingDir() string {
	return filepath.Join(XDGDataHome(), "runecast", "recordings")
}

func DefaultFontDir() string {
	return filepath.Join(XDGDataHome(), "runecast", "fonts")
}
