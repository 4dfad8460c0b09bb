// Package render draws the iClaudius app icon: a Roman purple gradient
// badge with a gold serif "C", a double gold ring and a ring of dots.
package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/iclaudius/claudius-icon/internal/constants"
	"github.com/iclaudius/claudius-icon/internal/logging"
)

// Option configures a Render call.
type Option func(*renderer)

// WithFontChain replaces the default font fallback chain.
func WithFontChain(chain []FontCandidate) Option {
	return func(r *renderer) {
		r.fonts = chain
	}
}

// WithLogger sets the logger used for font resolution messages.
func WithLogger(l *logging.Logger) Option {
	return func(r *renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

type renderer struct {
	fonts  []FontCandidate
	logger *logging.Logger
}

// Render returns a size×size icon. Each layer is composited over the
// previous one: gradient, rings, glyph shadow, glyph, dots.
// Render panics if size is not positive.
func Render(size int, opts ...Option) *image.RGBA {
	if size <= 0 {
		panic(fmt.Sprintf("render: invalid icon size %d", size))
	}
	r := &renderer{
		fonts:  DefaultFontChain(),
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	g := Layout(size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	drawGradient(img)
	strokeRing(img, g.OuterMargin, g.OuterStroke, constants.Gold)
	strokeRing(img, g.InnerMargin, g.InnerStroke, constants.DarkGold)
	r.drawGlyph(img, g)
	fillDots(img, g.Dots, g.DotRadius, constants.DarkGold)

	return img
}

// drawGradient fills every row with the top-to-bottom purple ramp.
func drawGradient(img *image.RGBA) {
	size := img.Bounds().Dy()
	for y := range size {
		c := gradientColor(y, size)
		row := img.Pix[y*img.Stride : y*img.Stride+img.Bounds().Dx()*4]
		for x := 0; x < len(row); x += 4 {
			row[x+0] = c.R
			row[x+1] = c.G
			row[x+2] = c.B
			row[x+3] = c.A
		}
	}
}

// gradientColor returns the opaque color of row y out of size rows.
func gradientColor(y, size int) color.RGBA {
	return lerpColor(constants.GradientTop, constants.GradientBottom, float64(y)/float64(size))
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
		A: 0xFF,
	}
}

// drawGlyph centers the glyph's ink box on the lifted image center and
// draws its shadow first.
func (r *renderer) drawGlyph(img *image.RGBA, g Geometry) {
	if g.FontSize < 1 {
		return
	}
	face, name := resolveFace(r.fonts, g.FontSize, r.logger)
	defer face.Close()
	r.logger.Debug().Str("font", name).Float64("size", g.FontSize).Msg("glyph font resolved")

	dot := glyphOrigin(face, g)
	shadow := fixed.P(g.ShadowOffset, g.ShadowOffset)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(constants.ShadowColor),
		Face: face,
		Dot:  dot.Add(shadow),
	}
	d.DrawString(constants.Glyph)

	d.Src = image.NewUniform(constants.Gold)
	d.Dot = dot
	d.DrawString(constants.Glyph)
}

// glyphOrigin returns the baseline origin that puts the glyph's ink box
// at the center of the canvas, raised by GlyphLift.
func glyphOrigin(face font.Face, g Geometry) fixed.Point26_6 {
	bounds, _ := font.BoundString(face, constants.Glyph)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	left := g.Center - w/2
	top := g.Center - h/2 - g.GlyphLift
	return fixed.Point26_6{
		X: fixed.I(left) - bounds.Min.X,
		Y: fixed.I(top) - bounds.Min.Y,
	}
}
