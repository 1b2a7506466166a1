package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plotmark/plotmark/pkg/buildinfo"
	"github.com/plotmark/plotmark/pkg/observability"
)

// Execute runs the plotmark CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render, inspect,
// serve, cache), configures logging based on the --verbose flag, and executes
// the command tree against ctx.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, plus render and overlay hooks that
//     log encode timings and marker state transitions
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "plotmark",
		Short:        "Plotmark renders charts with interactive marker overlays",
		Long:         `Plotmark is a CLI tool for rendering column and range-column charts with marker-point annotation overlays, driven by TOML chart specifications.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if verbose {
				observability.SetRenderHooks(&logRenderHooks{logger: logger})
				observability.SetOverlayHooks(&logOverlayHooks{logger: logger})
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
