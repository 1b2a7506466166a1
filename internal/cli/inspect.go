package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/plotmark/plotmark/pkg/config"
	"github.com/plotmark/plotmark/pkg/errors"
)

// newInspectCmd creates the inspect command, a terminal UI for exercising
// the marker overlay's hover and selection behavior without a browser.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [spec.toml]",
		Short: "Interactively drive marker hover and selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0])
		},
	}
}

func runInspect(ctx context.Context, input string) error {
	logger := loggerFromContext(ctx)

	spec, err := config.Load(input)
	if err != nil {
		return err
	}
	if spec.Marker == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "spec %s has no [marker] table to inspect", input)
	}

	view, overlay, err := spec.Build()
	if err != nil {
		return err
	}
	logger.Debugf("Built chart with %d markers from %d targets",
		len(overlay.Markers()), len(spec.Marker.Targets))

	if len(overlay.Markers()) == 0 {
		printWarning("No targets matched the chart data")
	}

	model := newMarkerModel(overlay, view.Canvas())
	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(markerModel); ok {
		if sel := m.overlay.Selection(); sel != nil {
			printKeyValue("Selection", sel.Name)
		} else {
			printKeyValue("Selection", "none")
		}
		printKeyValue("Draws", fmt.Sprintf("%d", m.canvas.Draws()))
	}
	return nil
}
