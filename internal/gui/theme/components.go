package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(8)
	PaddingS  = float32(12)
	PaddingM  = float32(18)
	PaddingL  = float32(24)

	CornerRadius   = float32(0.08)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	AccentStripWidth = float32(4)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelMuted
)

type SlotState int

const (
	SlotEmpty SlotState = iota
	SlotFilled
	SlotNewest
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = Mix(Border, AccentArcane, 0.35)
		strokeWidth = 1.4
	case PanelMuted:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
}

// DrawRuneSlot draws one cell of the rune accumulator.
func DrawRuneSlot(rect rl.Rectangle, state SlotState, label string) {
	fill := rl.Fade(PanelRaised, 0.45)
	stroke := rl.Fade(Border, 0.9)
	text := TextSecondary
	strokeWidth := BorderWidth

	switch state {
	case SlotFilled:
		fill = PanelRaised
		text = TextPrimary
	case SlotNewest:
		fill = PanelRaised
		stroke = AccentEmber
		strokeWidth = BorderWidthFocus
		text = AccentEmber
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
	if state == SlotNewest {
		strip := rl.NewRectangle(rect.X+1, rect.Y+2, AccentStripWidth, rect.Height-4)
		if strip.Height > 0 {
			rl.DrawRectangleRec(strip, AccentEmber)
		}
	}

	if label == "" {
		return
	}
	size := Type.Body
	w := measureText(label, size)
	drawText(label, int32(rect.X+(rect.Width-float32(w))/2), int32(rect.Y+(rect.Height-float32(size))/2-1), size, text)
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Header, TextPrimary)
	w := measureText(text, Type.Header)
	lineW := max(int32(float32(w)*0.6), 44)
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+lineW), float32(y+Type.Header+6), 2.0, AccentEmber)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

// Mix blends a toward b by t in [0,1].
func Mix(a, b rl.Color, t float32) rl.Color {
	t = min(max(t, 0), 1)
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
