package render

import (
	"math"

	"github.com/iclaudius/claudius-icon/internal/constants"
)

// Geometry holds every measurement derived from the image size. All integer
// fields use floor division of the size so a given size always lays out the
// same way.
type Geometry struct {
	Size   int
	Center int

	// OuterMargin and InnerMargin are the distances from the image edge to
	// the outside of each ring. Strokes grow inward from there.
	OuterMargin int
	OuterStroke int
	InnerMargin int
	InnerStroke int

	FontSize     float64
	ShadowOffset int
	// GlyphLift moves the glyph's visual center up from the image center.
	GlyphLift int

	DotRadius   int
	DotDistance int
	Dots        []Point
}

// Point is a sub-pixel position on the canvas.
type Point struct {
	X, Y float64
}

// Layout computes the geometry for a size×size icon.
func Layout(size int) Geometry {
	margin := size / 10
	outerStroke := size / 30

	g := Geometry{
		Size:         size,
		Center:       size / 2,
		OuterMargin:  margin,
		OuterStroke:  outerStroke,
		InnerMargin:  margin + outerStroke + size/50,
		InnerStroke:  size / 40,
		FontSize:     math.Floor(float64(size) * constants.GlyphScale),
		ShadowOffset: size / 60,
		GlyphLift:    size / 25,
		DotRadius:    size / 80,
		DotDistance:  size/2 - margin - size/15,
	}
	g.Dots = dotCenters(float64(g.Center), float64(g.DotDistance), constants.DotCount)
	return g
}

// dotCenters spaces n points evenly on a circle, starting at the top and
// moving clockwise in image coordinates (y grows downward).
func dotCenters(center, distance float64, n int) []Point {
	pts := make([]Point, n)
	for i := range n {
		angle := float64(i)/float64(n)*2*math.Pi - math.Pi/2
		pts[i] = Point{
			X: center + math.Cos(angle)*distance,
			Y: center + math.Sin(angle)*distance,
		}
	}
	return pts
}
