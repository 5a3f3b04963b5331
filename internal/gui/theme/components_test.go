package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestMixClampsAndBlends(t *testing.T) {
	a := rl.NewColor(0, 0, 0, 255)
	b := rl.NewColor(200, 100, 50, 255)
	if got := Mix(a, b, 0.5); got != rl.NewColor(100, 50, 25, 255) {
		t.Fatalf("Mix half = %+v", got)
	}
	if got := Mix(a, b, 2); got != b {
		t.Fatalf("Mix above 1 should clamp, got %+v", got)
	}
	if got := Mix(a, b, -1); got != a {
		t.Fatalf("Mix below 0 should clamp, got %+v", got)
	}
}
