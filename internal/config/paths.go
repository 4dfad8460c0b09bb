// Package config provides the output locations used by claudius-icon.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/iclaudius/claudius-icon/internal/constants"
	"github.com/iclaudius/claudius-icon/internal/pathutil"
)

// Paths holds the two files a generation run writes.
type Paths struct {
	// PNGPath is the master PNG. Its parent directory must already exist.
	PNGPath string

	// ICNSPath is the packed icon. Its parent directory is created on demand.
	ICNSPath string
}

// DefaultPaths resolves the fixed home-relative output locations.
//
// Locations:
//   - ~/xcode_projects/iClaudius/AppIcon.png
//   - ~/xcode_projects/iClaudius/iClaudius.app/Contents/Resources/AppIcon.icns
func DefaultPaths() (Paths, error) {
	png, err := pathutil.ResolveAbsolutePath(constants.PNGPath)
	if err != nil {
		return Paths{}, fmt.Errorf("resolve png path: %w", err)
	}
	icns, err := pathutil.ResolveAbsolutePath(constants.ICNSPath)
	if err != nil {
		return Paths{}, fmt.Errorf("resolve icns path: %w", err)
	}
	return Paths{PNGPath: png, ICNSPath: icns}, nil
}

// InDir returns paths with the same layout rooted at dir instead of the
// project directory. Used by tests and dry runs against scratch space.
func InDir(dir string) Paths {
	return Paths{
		PNGPath:  filepath.Join(dir, "AppIcon.png"),
		ICNSPath: filepath.Join(dir, "iClaudius.app", "Contents", "Resources", "AppIcon.icns"),
	}
}

// ResourcesDir returns the directory that will hold the .icns file.
func (p Paths) ResourcesDir() string {
	return filepath.Dir(p.ICNSPath)
}
