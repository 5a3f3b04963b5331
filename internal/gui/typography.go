package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	padtheme "github.com/appengine-ltd/runecast/internal/gui/theme"
)

// padType holds the text sizes used on the pad, in pixels.
type padType struct {
	Title  int32
	Header int32
	Body   int32
	Small  int32
	Glyph  int32
}

var typeScale = padType{
	Title:  30,
	Header: 21,
	Body:   19,
	Small:  16,
	Glyph:  26,
}

const (
	lineSpacing = 1.34
	fontAtlasPx = 48
)

// face is a loaded font. A zero face falls back to raylib's bitmap font.
type face struct {
	font  rl.Font
	owned bool
}

func (f face) loaded() bool { return f.font.Texture.ID != 0 }

func (f *face) unload() {
	if f.owned && f.loaded() {
		rl.UnloadFont(f.font)
	}
	*f = face{}
}

var (
	// uiFace renders labels and status lines.
	uiFace face
	// glyphFace renders rune names; it shares uiFace when no display font
	// is installed.
	glyphFace face
)

var (
	uiFontFiles    = []string{"Inter-Regular.ttf", "NotoSans-Regular.ttf"}
	glyphFontFiles = []string{"Cinzel-Regular.ttf", "UnifrakturCook-Bold.ttf"}
)

// fontPaths lists the candidate files for names across dirs, in search
// order. Empty dirs are skipped.
func fontPaths(dirs, names []string) []string {
	out := make([]string, 0, len(dirs)*len(names))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range names {
			out = append(out, filepath.Join(dir, name))
		}
	}
	return out
}

// initTypography loads the pad fonts from fontDir and ./assets/fonts.
func initTypography(fontDir string) {
	dirs := []string{fontDir, filepath.Join("assets", "fonts")}

	uiFace = face{font: rl.GetFontDefault()}
	if f, ok := loadFirstFont(fontPaths(dirs, uiFontFiles)); ok {
		uiFace = face{font: f, owned: true}
		rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	}

	glyphFace = face{font: uiFace.font}
	if f, ok := loadFirstFont(fontPaths(dirs, glyphFontFiles)); ok {
		glyphFace = face{font: f, owned: true}
		rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	}

	padtheme.SetTextRenderer(drawText, measureText)
}

func shutdownTypography() {
	glyphFace.unload()
	uiFace.unload()
}

func loadFirstFont(paths []string) (rl.Font, bool) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontAtlasPx, nil, 0)
		if font.Texture.ID != 0 {
			return font, true
		}
	}
	return rl.Font{}, false
}

func (f face) draw(text string, x, y, size int32, clr rl.Color) {
	if !f.loaded() {
		rl.DrawText(text, x, y, size, clr)
		return
	}
	rl.DrawTextEx(f.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(size), 1, clr)
}

func (f face) measure(text string, size int32) int32 {
	if !f.loaded() {
		return rl.MeasureText(text, size)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(f.font, text, float32(size), 1).X)))
}

func drawText(text string, x, y, size int32, clr rl.Color) { uiFace.draw(text, x, y, size, clr) }

func measureText(text string, size int32) int32 { return uiFace.measure(text, size) }

// drawGlyphText draws a rune name in the display face.
func drawGlyphText(text string, x, y int32, clr rl.Color) {
	glyphFace.draw(text, x, y, typeScale.Glyph, clr)
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * lineSpacing))
}
