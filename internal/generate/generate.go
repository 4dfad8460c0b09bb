// Package generate runs the full icon pipeline: render the master image,
// save it as PNG and export the packed .icns.
package generate

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/iclaudius/claudius-icon/internal/config"
	"github.com/iclaudius/claudius-icon/internal/constants"
	"github.com/iclaudius/claudius-icon/internal/iconset"
	"github.com/iclaudius/claudius-icon/internal/logging"
	"github.com/iclaudius/claudius-icon/internal/render"
)

// Exporter packs a master image into an icon file at dest.
type Exporter interface {
	Export(ctx context.Context, src image.Image, dest string) error
}

// Options carries the collaborators of a run. Zero values fall back to
// the iconutil exporter and a discarding logger.
type Options struct {
	Exporter Exporter
	Logger   *logging.Logger
	Render   []render.Option
}

// Run renders the icon at MasterSize, writes it to paths.PNGPath and
// exports the icon container to paths.ICNSPath.
func Run(ctx context.Context, paths config.Paths, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	exporter := opts.Exporter
	if exporter == nil {
		exporter = iconset.NewExporter(logger, nil)
	}

	renderOpts := append([]render.Option{render.WithLogger(logger)}, opts.Render...)
	icon := render.Render(constants.MasterSize, renderOpts...)

	if err := iconset.WritePNG(paths.PNGPath, icon); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	logger.Info().Str("path", paths.PNGPath).Msg("Saved PNG")

	if err := os.MkdirAll(paths.ResourcesDir(), constants.DirPerm); err != nil {
		return fmt.Errorf("failed to create resources directory: %w", err)
	}
	if err := exporter.Export(ctx, icon, paths.ICNSPath); err != nil {
		return err
	}
	logger.Info().Str("path", paths.ICNSPath).Msg("Saved ICNS")

	logger.Info().Msg("Icon generation complete!")
	return nil
}
