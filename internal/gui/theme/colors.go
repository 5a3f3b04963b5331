package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Palette for the drawing pad: night sky panels with ember and arcane accents.
var (
	BG            = rl.NewColor(0x12, 0x11, 0x1C, 255) // #12111C
	Panel         = rl.NewColor(0x1B, 0x19, 0x2A, 255) // #1B192A
	PanelRaised   = rl.NewColor(0x24, 0x21, 0x37, 255) // #242137
	Border        = rl.NewColor(0x38, 0x33, 0x52, 255) // #383352
	Divider       = rl.NewColor(0x2A, 0x27, 0x3E, 255) // #2A273E
	TextPrimary   = rl.NewColor(0xEC, 0xE6, 0xF5, 255) // #ECE6F5
	TextSecondary = rl.NewColor(0xAE, 0xA6, 0xC4, 255) // #AEA6C4
	TextMuted     = rl.NewColor(0x7A, 0x73, 0x94, 255) // #7A7394
	AccentEmber   = rl.NewColor(0xE0, 0x8A, 0x2E, 255) // #E08A2E
	AccentArcane  = rl.NewColor(0x9B, 0x7B, 0xFF, 255) // #9B7BFF
	WarningAmber  = rl.NewColor(0xC9, 0x9A, 0x3A, 255) // #C99A3A
	Danger        = rl.NewColor(0xC2, 0x4E, 0x4E, 255) // #C24E4E
	DisabledPanel = rl.NewColor(0x16, 0x15, 0x22, 255)
	DisabledText  = TextMuted
)
