package glyph

import (
	"image/color"
)

// DesignSize is the side of the square design space
// in which the glyph shapes are laid out.
const DesignSize = 128

// ArrowMinSize is the smallest output size showing the arrows.
// Below it, they would only add clutter.
const ArrowMinSize = 48

// ShowArrows reports whether the arrow shapes are drawn at `size`.
func ShowArrows(size int) bool { return size >= ArrowMinSize }

// Scale returns the factor mapping the design space to an output `size`.
func Scale(size int) float64 { return float64(size) / DesignSize }

// Kind is the type of a glyph shape.
type Kind uint8

const (
	Ellipse  Kind = iota // filled, Points[0] is the center
	Rect                 // filled, Points[0] and Points[1] are opposite corners
	Polyline             // stroked, open
	Polygon              // filled, closed
)

func (k Kind) String() string {
	switch k {
	case Ellipse:
		return "Ellipse"
	case Rect:
		return "Rect"
	case Polyline:
		return "Polyline"
	case Polygon:
		return "Polygon"
	default:
		return "<unknown Kind>"
	}
}

// Stroked is true for the kinds drawn with a line,
// false for the filled ones.
func (k Kind) Stroked() bool { return k == Polyline }

// Outlined is true for the filled kinds whose edges are also
// traced with a one pixel line, so that the pixels their vertices
// and edges go through are always inked.
func (k Kind) Outlined() bool { return k == Polygon }

// Point is a location in the design space.
type Point struct{ X, Y float64 }

// Pixel is a location in an output image.
type Pixel struct{ X, Y int }

// Shape is one entry of the glyph table, in design units.
type Shape struct {
	Name   string
	Kind   Kind
	Points []Point
	Radius float64 // for Ellipse only

	// MinSize is the smallest output size the shape is drawn at.
	// Zero means always.
	MinSize int
}

// VisibleAt reports whether the shape is drawn at `size`.
func (s Shape) VisibleAt(size int) bool {
	return size >= s.MinSize
}

// Scaled is a Shape mapped to pixel coordinates.
type Scaled struct {
	Kind   Kind
	Points []Pixel
	Radius int
}

// toPixels truncates toward zero, which is what the
// pixel exact output at small sizes relies on.
func toPixels(v, scale float64) int { return int(v * scale) }

// At maps the shape to pixel coordinates, for the given scale factor.
func (s Shape) At(scale float64) Scaled {
	out := Scaled{Kind: s.Kind, Points: make([]Pixel, len(s.Points)), Radius: toPixels(s.Radius, scale)}
	for i, pt := range s.Points {
		out.Points[i] = Pixel{toPixels(pt.X, scale), toPixels(pt.Y, scale)}
	}
	return out
}

// Path returns the outline of the shape.
// Boxes (rectangles and the bounding box of ellipses) include
// both of their end pixels, while the vertices of polylines
// and polygons are placed at pixel centers.
func (s Scaled) Path() Path {
	var p Path
	switch s.Kind {
	case Ellipse:
		c, r := s.Points[0], float64(s.Radius)
		p.addEllipse(float64(c.X)+0.5, float64(c.Y)+0.5, r+0.5, r+0.5)
	case Rect:
		a, b := s.Points[0], s.Points[1]
		p.addRect(float64(min(a.X, b.X)), float64(min(a.Y, b.Y)), float64(max(a.X, b.X)+1), float64(max(a.Y, b.Y)+1))
	case Polyline:
		p.addPolyline(s.Points, false)
	case Polygon:
		p.addPolyline(s.Points, true)
	}
	return p
}

// Outline returns the edges of a polygon as independent segments,
// each one ending with its own caps.
func (s Scaled) Outline() Path {
	var p Path
	for i, a := range s.Points {
		b := s.Points[(i+1)%len(s.Points)]
		p.addPolyline([]Pixel{a, b}, false)
	}
	return p
}

// Icon describes a complete icon: its background
// and the glyph drawn on top of it.
type Icon struct {
	Name       string
	Background Gradient

	// MaskMargin is the distance, in pixels, between
	// the image borders and the circular mask.
	MaskMargin int

	Ink         color.NRGBA
	StrokeWidth float64 // in design units
	Shapes      []Shape
}

// StrokePixels returns the stroke width at `size`, never less than one pixel.
func (ic *Icon) StrokePixels(size int) int {
	return max(1, toPixels(ic.StrokeWidth, Scale(size)))
}

// Visible returns the shapes drawn at `size`, in drawing order.
func (ic *Icon) Visible(size int) []Shape {
	out := make([]Shape, 0, len(ic.Shapes))
	for _, s := range ic.Shapes {
		if s.VisibleAt(size) {
			out = append(out, s)
		}
	}
	return out
}

// MaskPath returns the ellipse inscribed in a `size` wide
// square, at MaskMargin pixels from each border.
func (ic *Icon) MaskPath(size int) Path {
	var p Path
	half := float64(size) / 2
	r := half - float64(ic.MaskMargin)
	p.addEllipse(half, half, r, r)
	return p
}

var (
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}

	activeBackground = Gradient{
		Top:    color.NRGBA{102, 126, 234, 0xff},
		Bottom: color.NRGBA{118, 75, 162, 0xff},
	}
	// luma of the active colors
	inactiveBackground = Gradient{
		Top:    color.NRGBA{131, 131, 131, 0xff},
		Bottom: color.NRGBA{97, 97, 97, 0xff},
	}
)

func pts(coords ...float64) []Point {
	out := make([]Point, len(coords)/2)
	for i := range out {
		out[i] = Point{coords[2*i], coords[2*i+1]}
	}
	return out
}

// workflowShapes returns a fresh copy of the glyph table.
func workflowShapes() []Shape {
	return []Shape{
		{Name: "top-node", Kind: Ellipse, Points: pts(64, 30), Radius: 8},

		{Name: "left-branch", Kind: Polyline, Points: pts(64, 38, 64, 50, 40, 50, 40, 65)},
		{Name: "left-box", Kind: Rect, Points: pts(30, 65, 50, 81)},
		{Name: "left-stem", Kind: Polyline, Points: pts(40, 81, 40, 95)},
		{Name: "left-node", Kind: Ellipse, Points: pts(40, 100), Radius: 6},

		{Name: "right-branch", Kind: Polyline, Points: pts(64, 50, 88, 50, 88, 65)},
		{Name: "right-box", Kind: Rect, Points: pts(78, 65, 98, 81)},
		{Name: "right-stem", Kind: Polyline, Points: pts(88, 81, 88, 95)},
		{Name: "right-node", Kind: Ellipse, Points: pts(88, 100), Radius: 6},

		{Name: "down-arrow-shaft", Kind: Polyline, Points: pts(100, 35, 100, 50), MinSize: ArrowMinSize},
		{Name: "down-arrow-head", Kind: Polygon, Points: pts(95, 45, 100, 50, 105, 45), MinSize: ArrowMinSize},
		{Name: "up-arrow-shaft", Kind: Polyline, Points: pts(110, 50, 110, 35), MinSize: ArrowMinSize},
		{Name: "up-arrow-head", Kind: Polygon, Points: pts(105, 40, 110, 35, 115, 40), MinSize: ArrowMinSize},
	}
}

// Workflow returns the icon shown while the extension is active:
// the white workflow glyph on a blue to purple circle.
func Workflow() *Icon {
	return &Icon{
		Name:        "active",
		Background:  activeBackground,
		MaskMargin:  2,
		Ink:         white,
		StrokeWidth: 3,
		Shapes:      workflowShapes(),
	}
}

// Inactive returns the grayed out variant of Workflow.
func Inactive() *Icon {
	ic := Workflow()
	ic.Name = "inactive"
	ic.Background = inactiveBackground
	return ic
}
