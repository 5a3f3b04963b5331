package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyboardInput reports the precast modifier from the live keyboard.
type keyboardInput struct{}

func (keyboardInput) PrecastHeld() bool { return shiftDown() }

func ShiftKeyPressed(key int32) bool {
	if shiftDown() && rl.IsKeyPressed(key) {
		return true
	}
	// Accept either key order: Shift then key, or key then Shift.
	if rl.IsKeyDown(key) && (rl.IsKeyPressed(rl.KeyLeftShift) || rl.IsKeyPressed(rl.KeyRightShift)) {
		return true
	}
	return false
}

// PlainKeyPressed is a key press with no modifier held, so Shift can stay
// the precast modifier while hotkeys fire.
func PlainKeyPressed(key int32) bool {
	return !ctrlDown() && !altDown() && rl.IsKeyPressed(key)
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

func altDown() bool {
	return rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
}
