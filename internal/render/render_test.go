package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/iclaudius/claudius-icon/internal/constants"
)

// bitmapOnly keeps tests independent of the host's installed fonts.
var bitmapOnly = WithFontChain([]FontCandidate{BasicFont()})

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff >= -tol && diff <= tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestRender_Dimensions(t *testing.T) {
	for _, size := range []int{1, 2, 16, 33, 128, 300} {
		img := Render(size, bitmapOnly)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %v, want %dx%d", size, b, size, size)
		}
	}
}

func TestRender_PanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Render(0) did not panic")
		}
	}()
	Render(0)
}

func TestRender_Gradient(t *testing.T) {
	const size = 200
	img := Render(size, bitmapOnly)

	top := img.RGBAAt(0, 0)
	if top != constants.GradientTop {
		t.Errorf("top-left pixel = %v, want %v", top, constants.GradientTop)
	}

	bottom := img.RGBAAt(0, size-1)
	if !near(bottom, constants.GradientBottom, 1) {
		t.Errorf("bottom-left pixel = %v, want within 1 of %v", bottom, constants.GradientBottom)
	}

	// Every row is uniform at the edge and the ramp never darkens.
	prev := top
	for y := 1; y < size; y++ {
		c := img.RGBAAt(0, y)
		if c.R < prev.R || c.G < prev.G || c.B < prev.B {
			t.Fatalf("gradient darkens at row %d: %v after %v", y, c, prev)
		}
		if c.A != 0xFF {
			t.Fatalf("row %d is not opaque: %v", y, c)
		}
		if c != img.RGBAAt(size-1, y) {
			t.Fatalf("row %d is not uniform", y)
		}
		prev = c
	}
}

func TestGradientColor(t *testing.T) {
	tests := []struct {
		name string
		y    int
		want color.RGBA
	}{
		{"first row", 0, color.RGBA{88, 28, 108, 255}},
		{"middle row", 512, color.RGBA{108, 38, 123, 255}},
		{"last row", 1023, color.RGBA{127, 47, 137, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gradientColor(tt.y, 1024)
			if got != tt.want {
				t.Errorf("gradientColor(%d, 1024) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestRender_Rings(t *testing.T) {
	const size = 1024
	img := Render(size, bitmapOnly)
	g := Layout(size)

	// Mid-stroke of the outer ring at the top of the badge.
	outerMid := float64(size)/2 - float64(g.OuterMargin) - float64(g.OuterStroke)/2
	if c := img.RGBAAt(g.Center, g.Center-int(outerMid)); !near(c, constants.Gold, 1) {
		t.Errorf("outer ring pixel = %v, want %v", c, constants.Gold)
	}

	// Mid-stroke of the inner ring, halfway between two dots.
	innerMid := float64(size)/2 - float64(g.InnerMargin) - float64(g.InnerStroke)/2
	theta := (-90 + 7.5) * math.Pi / 180
	x := int(float64(g.Center) + innerMid*math.Cos(theta))
	y := int(float64(g.Center) + innerMid*math.Sin(theta))
	if c := img.RGBAAt(x, y); !near(c, constants.DarkGold, 1) {
		t.Errorf("inner ring pixel at (%d,%d) = %v, want %v", x, y, c, constants.DarkGold)
	}

	// The gap between the rings still shows the gradient.
	gap := g.OuterMargin + g.OuterStroke + (g.InnerMargin-g.OuterMargin-g.OuterStroke)/2
	gy := gap
	if c := img.RGBAAt(g.Center, gy); c != gradientColor(gy, size) {
		t.Errorf("gap pixel = %v, want gradient %v", c, gradientColor(gy, size))
	}

	// Outside the outer ring the corners are untouched gradient.
	if c := img.RGBAAt(5, 5); c != gradientColor(5, size) {
		t.Errorf("corner pixel = %v, want gradient %v", c, gradientColor(5, size))
	}
}

func TestRender_Dots(t *testing.T) {
	const size = 1024
	img := Render(size, bitmapOnly)
	g := Layout(size)

	for i, p := range g.Dots {
		c := img.RGBAAt(int(p.X), int(p.Y))
		if !near(c, constants.DarkGold, 1) {
			t.Errorf("dot %d center (%d,%d) = %v, want %v", i, int(p.X), int(p.Y), c, constants.DarkGold)
		}
	}
}

// glyphPixels counts gold and shadow pixels inside the dot ring, where only
// the glyph layers can paint.
func glyphPixels(img *image.RGBA, g Geometry) (gold, shadow int) {
	limit := float64(g.DotDistance - g.DotRadius - 2)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if math.Hypot(float64(x-g.Center), float64(y-g.Center)) > limit {
				continue
			}
			c := img.RGBAAt(x, y)
			if near(c, constants.Gold, 1) {
				gold++
			} else if c.R < 60 && c.G < 60 && c.B < 60 {
				shadow++
			}
		}
	}
	return gold, shadow
}

func TestRender_GlyphWithScalableFont(t *testing.T) {
	const size = 256
	img := Render(size, WithFontChain([]FontCandidate{GoRegular()}))

	gold, shadow := glyphPixels(img, Layout(size))
	if gold < 100 {
		t.Errorf("expected a large gold glyph, found %d gold pixels", gold)
	}
	if shadow == 0 {
		t.Error("expected visible shadow pixels")
	}
}

func TestRender_FontFallbackWithoutSerifFonts(t *testing.T) {
	const size = 256
	chain := []FontCandidate{
		FileFont("/nonexistent/Fonts/Times.ttc"),
		FileFont("/nonexistent/Fonts/Times New Roman.ttf"),
		BasicFont(),
	}

	img := Render(size, WithFontChain(chain))

	gold, _ := glyphPixels(img, Layout(size))
	if gold == 0 {
		t.Error("expected the fallback glyph to be drawn")
	}
}

func TestRender_EmptyFontChain(t *testing.T) {
	img := Render(128, WithFontChain(nil))
	if img.Bounds().Dx() != 128 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	tests := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"t=0 returns first", 0, color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{"t=1 returns second", 1, color.RGBA{R: 200, G: 100, B: 50, A: 255}},
		{"t=0.5 midpoint", 0.5, color.RGBA{R: 100, G: 50, B: 25, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lerpColor(a, b, tt.t)
			if got != tt.want {
				t.Errorf("lerpColor(a, b, %v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}
