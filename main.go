// claudius-icon renders the iClaudius app icon and packs it into the app
// bundle as AppIcon.icns.
//
// Build with: go build -ldflags "-X github.com/iclaudius/claudius-icon/internal/version.Version=vX.Y.Z" .
package main

import (
	"os"

	"github.com/iclaudius/claudius-icon/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
