// Package cli provides the command-line interface for claudius-icon.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iclaudius/claudius-icon/internal/config"
	"github.com/iclaudius/claudius-icon/internal/constants"
	"github.com/iclaudius/claudius-icon/internal/generate"
	"github.com/iclaudius/claudius-icon/internal/iconset"
	"github.com/iclaudius/claudius-icon/internal/logging"
	"github.com/iclaudius/claudius-icon/internal/progress"
	"github.com/iclaudius/claudius-icon/internal/version"
)

var (
	// Global flags
	verbose bool
	debug   bool

	// Global logger
	logger *logging.Logger
)

// NewRootCmd creates the root command. Running it with no arguments
// performs the whole render-and-export sequence.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Generate the iClaudius app icon",
		Long: `claudius-icon ` + version.Version + ` - Built: ` + version.BuildTime + `
Renders the iClaudius app icon (a gold serif "C" on a Roman purple badge)
and installs it into the Xcode project:

  ~/xcode_projects/iClaudius/AppIcon.png
  ~/xcode_projects/iClaudius/iClaudius.app/Contents/Resources/AppIcon.icns

Packing the .icns requires the macOS iconutil tool on PATH.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger(cmd.OutOrStdout())
			if verbose || debug {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := config.DefaultPaths()
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), paths, iconset.Iconutil{})
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

func runGenerate(ctx context.Context, paths config.Paths, packager iconset.Packager) error {
	log := GetLogger()
	exporter := &iconset.Exporter{
		Packager: packager,
		Reporter: progress.NewReporter(),
		Logger:   log,
	}
	return generate.Run(ctx, paths, generate.Options{
		Exporter: exporter,
		Logger:   log,
	})
}

// Execute runs the CLI with a context that is cancelled on SIGINT/SIGTERM.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		for sig := range sigChan {
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nReceived signal %v, cancelling...\n", sig)
				cancel()
			}
		}
	}()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		GetLogger().Error().Err(err).Msg("Icon generation failed")
	}

	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}
