package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	padtheme "github.com/appengine-ltd/runecast/internal/gui/theme"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Arcane        rl.Color
	Warning       rl.Color
	Danger        rl.Color
}

const (
	spaceS = padtheme.PaddingS
	spaceM = padtheme.PaddingM
	spaceL = padtheme.PaddingL
)

var AppTheme = Theme{
	Background:    padtheme.BG,
	Panel:         padtheme.Panel,
	Border:        padtheme.Border,
	TextPrimary:   padtheme.TextPrimary,
	TextSecondary: padtheme.TextSecondary,
	TextMuted:     padtheme.TextMuted,
	Accent:        padtheme.AccentEmber,
	Arcane:        padtheme.AccentArcane,
	Warning:       padtheme.WarningAmber,
	Danger:        padtheme.Danger,
}

// MeterThresholds are percentages at which a meter turns amber and red.
type MeterThresholds struct {
	Warning int
	Danger  int
}

// DrawPanel draws a themed panel. If title is non-empty, a header with an
// ember underline and a divider are drawn inside the panel top.
func DrawPanel(rect rl.Rectangle, title string, focused bool) {
	variant := padtheme.PanelStandard
	if focused {
		variant = padtheme.PanelLifted
	}
	padtheme.DrawPanel(rect, variant)
	if title != "" {
		padtheme.DrawHeader(title, int32(rect.X+spaceM), int32(rect.Y+spaceS))
		dividerY := rect.Y + spaceS + float32(typeScale.Header) + 8
		padtheme.DrawDivider(rect.X+spaceM, dividerY, rect.X+rect.Width-spaceM, dividerY)
	}
}

// DrawMeter draws a labelled horizontal gauge for value in [0,100].
func DrawMeter(label string, value int, rect rl.Rectangle, thresholds MeterThresholds) {
	v := clampInt(value, 0, 100)
	barY := rect.Y + float32(typeScale.Small) + 2
	track := rl.NewRectangle(rect.X, barY, rect.Width, 8)
	fill := rl.NewRectangle(track.X+1, track.Y+1, (track.Width-2)*float32(v)/100.0, track.Height-2)

	drawText(fmt.Sprintf("%s %d%%", label, v), int32(rect.X), int32(rect.Y), typeScale.Small, AppTheme.TextSecondary)
	rl.DrawRectangleRec(track, rl.Fade(AppTheme.Panel, 0.9))
	if fill.Width > 0 {
		rl.DrawRectangleRec(fill, meterFillColor(v, thresholds))
	}
	rl.DrawRectangleLinesEx(track, 1.0, rl.Fade(AppTheme.Border, 0.95))
}

func meterFillColor(value int, thresholds MeterThresholds) rl.Color {
	warning := clampInt(thresholds.Warning, 0, 100)
	danger := clampInt(thresholds.Danger, 0, 100)
	if warning == 0 {
		warning = 70
	}
	if danger == 0 {
		danger = 90
	}
	if value >= danger {
		return AppTheme.Danger
	}
	if value >= warning {
		return AppTheme.Warning
	}
	return AppTheme.Arcane
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
