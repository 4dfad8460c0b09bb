package iconset

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/iclaudius/claudius-icon/internal/logging"
	"github.com/iclaudius/claudius-icon/internal/progress"
)

// Exporter writes a packed icon file from a master image.
type Exporter struct {
	Packager Packager
	Reporter progress.Reporter
	Logger   *logging.Logger
}

// NewExporter returns an exporter that packs with iconutil.
func NewExporter(logger *logging.Logger, reporter progress.Reporter) *Exporter {
	return &Exporter{
		Packager: Iconutil{},
		Reporter: reporter,
		Logger:   logger,
	}
}

// Export stages the icon set next to dest, packs it into dest and removes
// the staging directory. The staging directory is removed on every return
// path, including a failed pack.
func (e *Exporter) Export(ctx context.Context, src image.Image, dest string) (err error) {
	logger := e.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	packager := e.Packager
	if packager == nil {
		packager = Iconutil{}
	}

	dir := StagingDir(dest)
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			logger.Warn().Err(rmErr).Str("dir", dir).Msg("failed to remove iconset directory")
			if err == nil {
				err = fmt.Errorf("failed to remove iconset directory: %w", rmErr)
			}
			return
		}
		logger.Debug().Str("dir", dir).Msg("removed iconset directory")
	}()

	files, err := Stage(src, dir, e.Reporter)
	if err != nil {
		return err
	}
	logger.Debug().Int("files", len(files)).Str("dir", dir).Msg("staged icon set")

	if err := packager.Pack(ctx, dir, dest); err != nil {
		return fmt.Errorf("failed to pack %s: %w", dest, err)
	}
	return nil
}
