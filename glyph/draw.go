package glyph

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any knowledge of the design space:
// points are already scaled and truncated to the pixel grid
// before being sent to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(c color.Color)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Stroker interface {
	Drawer

	// SetStrokeWidth sets the line width for the current path
	SetStrokeWidth(width fixed.Int26_6)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every shape.
	// If the `willXXX` boolean is false, the returned drawer may be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (Drawer, Stroker)
}

// Draw the glyph of the icon, as seen at `size`, into the driver `d`.
// Shapes below their minimum size are skipped.
func (ic *Icon) Draw(d Driver, size int) {
	scale := Scale(size)
	width := fixed.I(ic.StrokePixels(size))
	for _, shape := range ic.Visible(size) {
		scaled := shape.At(scale)
		if shape.Kind.Stroked() {
			ic.stroke(d, scaled.Path(), width)
			continue
		}

		ic.fill(d, scaled.Path())
		if shape.Kind.Outlined() {
			ic.stroke(d, scaled.Outline(), fixed.I(1))
		}
	}
}

func (ic *Icon) fill(d Driver, path Path) {
	filler, _ := d.SetupDrawers(true, false)
	filler.Clear()
	path.AddTo(filler)
	filler.Stop(false)
	filler.SetColor(ic.Ink)
	filler.Draw()
}

func (ic *Icon) stroke(d Driver, path Path, width fixed.Int26_6) {
	_, stroker := d.SetupDrawers(false, true)
	stroker.Clear()
	stroker.SetStrokeWidth(width)
	path.AddTo(stroker)
	stroker.Stop(false)
	stroker.SetColor(ic.Ink)
	stroker.Draw()
}
