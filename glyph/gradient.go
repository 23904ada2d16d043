package glyph

import (
	"image/color"
)

// Gradient holds a vertical linear gradient, from
// the `Top` color on the first row to the `Bottom` color
// just past the last row.
type Gradient struct {
	Top, Bottom color.NRGBA
}

// At returns the opaque color of row `y` in an image `size` rows high.
// Each channel is interpolated on its own and truncated,
// so that the last row never quite reaches `Bottom`.
func (g Gradient) At(y, size int) color.NRGBA {
	return color.NRGBA{
		R: lerp(g.Top.R, g.Bottom.R, y, size),
		G: lerp(g.Top.G, g.Bottom.G, y, size),
		B: lerp(g.Top.B, g.Bottom.B, y, size),
		A: 0xff,
	}
}

func lerp(from, to uint8, y, size int) uint8 {
	delta := (int(to) - int(from)) * y
	return uint8(float64(from) + float64(delta)/float64(size))
}
