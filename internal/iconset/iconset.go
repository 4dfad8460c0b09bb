// Package iconset stages resized copies of the master icon into a macOS
// .iconset directory and packs it into an .icns file.
package iconset

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"

	"github.com/iclaudius/claudius-icon/internal/constants"
	"github.com/iclaudius/claudius-icon/internal/progress"
)

// Entry is one image inside an icon set.
type Entry struct {
	// Name is the file name iconutil expects, e.g. icon_32x32@2x.png.
	Name string
	// Nominal is the point size the entry is listed under.
	Nominal int
	// Pixels is the side length actually written.
	Pixels int
}

// Entries returns the fixed icon set layout: every resolution at 1x, and
// resolutions up to RetinaMaxResolution again at 2x.
func Entries() []Entry {
	var entries []Entry
	for _, n := range constants.IconResolutions {
		entries = append(entries, Entry{
			Name:    fmt.Sprintf("icon_%dx%d.png", n, n),
			Nominal: n,
			Pixels:  n,
		})
		if n <= constants.RetinaMaxResolution {
			entries = append(entries, Entry{
				Name:    fmt.Sprintf("icon_%dx%d@2x.png", n, n),
				Nominal: n,
				Pixels:  2 * n,
			})
		}
	}
	return entries
}

// StagingDir returns the .iconset directory that sits next to dest, with
// dest's extension replaced: AppIcon.icns -> AppIcon.iconset.
func StagingDir(dest string) string {
	return strings.TrimSuffix(dest, filepath.Ext(dest)) + constants.IconsetExt
}

// Resize returns an n×n Lanczos-resampled copy of src. src is not modified.
func Resize(src image.Image, n int) image.Image {
	return resize.Resize(uint(n), uint(n), src, resize.Lanczos3)
}

// Stage writes every entry of the icon set into dir, creating it if needed.
// It returns the paths written, in Entries order.
func Stage(src image.Image, dir string, reporter progress.Reporter) ([]string, error) {
	if reporter == nil {
		reporter = progress.NopProgress{}
	}
	if err := os.MkdirAll(dir, constants.DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create iconset directory: %w", err)
	}

	entries := Entries()
	reporter.Start(len(entries), "Staging icon set")
	defer reporter.Finish()

	written := make([]string, 0, len(entries))
	for _, e := range entries {
		reporter.SetDescription(e.Name)
		path := filepath.Join(dir, e.Name)
		if err := WritePNG(path, Resize(src, e.Pixels)); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", e.Name, err)
		}
		written = append(written, path)
		reporter.Increment()
	}
	return written, nil
}

// WritePNG encodes img to path. The parent directory must exist.
func WritePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePerm)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
