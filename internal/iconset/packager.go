package iconset

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/iclaudius/claudius-icon/internal/constants"
)

// Packager turns a staged .iconset directory into a packed icon file.
type Packager interface {
	Pack(ctx context.Context, iconsetDir, output string) error
}

// Iconutil packs icon sets with the macOS iconutil command.
type Iconutil struct {
	// Command overrides the executable; empty means "iconutil" on PATH.
	Command string
}

// Pack runs `iconutil -c icns <iconsetDir> -o <output>` to completion.
// A missing tool, a non-zero exit or a missing output file is an error.
func (p Iconutil) Pack(ctx context.Context, iconsetDir, output string) error {
	name := p.Command
	if name == "" {
		name = constants.IconutilCommand
	}
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, name, "-c", "icns", iconsetDir, "-o", output)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s command failed: %w: %s", name, err, string(out))
	}

	if _, err := os.Stat(output); err != nil {
		return fmt.Errorf("%s output file not created: %w", name, err)
	}
	return nil
}
