package render

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/iclaudius/claudius-icon/internal/constants"
	"github.com/iclaudius/claudius-icon/internal/logging"
)

// FontCandidate is one step of the glyph font fallback chain.
type FontCandidate struct {
	Name string
	Load func(size float64) (font.Face, error)
}

// DefaultFontChain returns the serif system fonts followed by the built-in
// faces. The last entry cannot fail.
func DefaultFontChain() []FontCandidate {
	return []FontCandidate{
		FileFont(constants.PreferredFontPath),
		FileFont(constants.AlternateFontPath),
		GoRegular(),
		BasicFont(),
	}
}

// FileFont loads a TrueType/OpenType font or the first face of a font
// collection (.ttc) from path.
func FileFont(path string) FontCandidate {
	return FontCandidate{
		Name: path,
		Load: func(size float64) (font.Face, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			f, err := parseFont(data)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			return newFace(f, size)
		},
	}
}

// GoRegular uses the embedded Go Regular font, which scales like the
// system fonts it stands in for.
func GoRegular() FontCandidate {
	return FontCandidate{
		Name: "builtin:goregular",
		Load: func(size float64) (font.Face, error) {
			f, err := opentype.Parse(goregular.TTF)
			if err != nil {
				return nil, err
			}
			return newFace(f, size)
		},
	}
}

// BasicFont is the fixed 7x13 bitmap face. It ignores size.
func BasicFont() FontCandidate {
	return FontCandidate{
		Name: "builtin:basic7x13",
		Load: func(float64) (font.Face, error) {
			return basicfont.Face7x13, nil
		},
	}
}

// resolveFace walks chain in order and returns the first face that loads.
// It never fails: an exhausted chain yields the bitmap face.
func resolveFace(chain []FontCandidate, size float64, logger *logging.Logger) (font.Face, string) {
	for _, c := range chain {
		face, err := c.Load(size)
		if err == nil {
			return face, c.Name
		}
		logger.Debug().Err(err).Str("font", c.Name).Msg("font candidate unavailable")
	}
	return basicfont.Face7x13, BasicFont().Name
}

func parseFont(data []byte) (*opentype.Font, error) {
	coll, collErr := opentype.ParseCollection(data)
	if collErr == nil {
		if coll.NumFonts() == 0 {
			return nil, errors.New("empty font collection")
		}
		return coll.Font(0)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Join(collErr, err)
	}
	return f, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     constants.FontDPI,
		Hinting: font.HintingFull,
	})
}
