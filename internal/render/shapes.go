package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// addCircle appends a closed circle to z. Reversed circles wind the other
// way, which cancels coverage where they overlap a forward circle.
func addCircle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	s := float32(1)
	if reverse {
		s = -1
	}
	k := kappa * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+s*k, cx+k, cy+s*r, cx, cy+s*r)
	z.CubeTo(cx-k, cy+s*r, cx-r, cy+s*k, cx-r, cy)
	z.CubeTo(cx-r, cy-s*k, cx-k, cy-s*r, cx, cy-s*r)
	z.CubeTo(cx+k, cy-s*r, cx+r, cy-s*k, cx+r, cy)
	z.ClosePath()
}

// strokeRing paints a circle outline whose outside sits margin pixels in
// from the canvas edge and whose stroke grows inward by width.
func strokeRing(dst draw.Image, margin, width int, c color.Color) {
	b := dst.Bounds()
	size := b.Dx()
	center := float32(size) / 2
	outer := float32(size)/2 - float32(margin)
	inner := outer - float32(width)
	if outer <= 0 || width <= 0 {
		return
	}
	if inner < 0 {
		inner = 0
	}

	z := vector.NewRasterizer(size, b.Dy())
	z.DrawOp = draw.Over
	addCircle(z, center, center, outer, false)
	if inner > 0 {
		addCircle(z, center, center, inner, true)
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// fillDots paints a filled disk of radius r at every point.
func fillDots(dst draw.Image, pts []Point, r int, c color.Color) {
	if r <= 0 || len(pts) == 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for _, p := range pts {
		addCircle(z, float32(p.X), float32(p.Y), float32(r), false)
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
