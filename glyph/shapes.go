package glyph

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an ellipse.
const maxDx float64 = math.Pi / 8

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// pixelCenter returns the center of the pixel (x, y).
func pixelCenter(x, y int) fixed.Point26_6 {
	return toFixedP(float64(x)+0.5, float64(y)+0.5)
}

// addRect adds an axis aligned rectangle whose corners are given in pixel edges.
func (p *Path) addRect(minX, minY, maxX, maxY float64) {
	p.Start(toFixedP(minX, minY))
	p.Line(toFixedP(maxX, minY))
	p.Line(toFixedP(maxX, maxY))
	p.Line(toFixedP(minX, maxY))
	p.Stop(true)
}

// addEllipse adds a closed, axis aligned ellipse centered at (cx, cy),
// approximated with cubic bezier splines.
func (p *Path) addEllipse(cx, cy, rx, ry float64) {
	segs := int(math.Round(2 * math.Pi / maxDx))
	dEta := 2 * math.Pi / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	sx, sy := ellipsePointAt(rx, ry, 0, cx, cy)
	lx, ly := sx, sy
	ldx, ldy := ellipsePrime(rx, ry, 0)
	p.Start(toFixedP(sx, sy))
	for i := 1; i <= segs; i++ {
		eta := dEta * float64(i)
		var px, py float64
		if i == segs {
			px, py = sx, sy // Just makes the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(rx, ry, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, eta)
		p.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	p.Stop(true)
}

// addPolyline adds the segments joining the centers of the given pixels.
// The polygon is closed if `closeLoop` is true.
func (p *Path) addPolyline(points []Pixel, closeLoop bool) {
	for i, pt := range points {
		if i == 0 {
			p.Start(pixelCenter(pt.X, pt.Y))
			continue
		}
		p.Line(pixelCenter(pt.X, pt.Y))
	}
	p.Stop(closeLoop)
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, eta float64) (px, py float64) {
	return -a * math.Sin(eta), b * math.Cos(eta)
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, eta, cx, cy float64) (px, py float64) {
	return cx + a*math.Cos(eta), cy + b*math.Sin(eta)
}
