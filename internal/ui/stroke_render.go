package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/runecast/internal/gesture"
)

// renderStrokeANSI rasterises a gesture into half-block characters: the raw
// samples faintly, the simplified path on top with its vertices marked.
func renderStrokeANSI(raw, path []gesture.Point, widthChars, heightRows int) string {
	if len(raw) == 0 || widthChars < 4 || heightRows < 2 {
		return ""
	}
	w := widthChars
	h := heightRows * 2
	dc := gg.NewContext(w, h)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	bounds := gesture.Bounds(raw)
	span := float64(max(bounds.Width(), bounds.Height(), 1))
	margin := 2.0
	scale := min((float64(w)-2*margin)/span, (float64(h)-2*margin)/span)
	offX := (float64(w) - float64(bounds.Width())*scale) / 2
	offY := (float64(h) - float64(bounds.Height())*scale) / 2
	project := func(p gesture.Point) (float64, float64) {
		return offX + float64(p.X-bounds.MinX)*scale, offY + float64(p.Y-bounds.MinY)*scale
	}

	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	dc.SetRGBA255(90, 70, 160, 200)
	dc.SetLineWidth(1)
	for i, p := range raw {
		x, y := project(p)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.Stroke()

	dc.SetColor(color.RGBA{R: 200, G: 160, B: 255, A: 255})
	dc.SetLineWidth(1.6)
	for i, p := range path {
		x, y := project(p)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.Stroke()

	dc.SetColor(color.RGBA{R: 255, G: 200, B: 90, A: 255})
	for _, p := range path {
		x, y := project(p)
		dc.DrawCircle(x, y, 1.2)
		dc.Fill()
	}

	return rgbaImageToANSIHalfBlocks(dc.Image())
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}
