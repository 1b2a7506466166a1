package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/plotmark/plotmark/pkg/cache"
	"github.com/plotmark/plotmark/pkg/chart"
	"github.com/plotmark/plotmark/pkg/config"
	"github.com/plotmark/plotmark/pkg/errors"
	"github.com/plotmark/plotmark/pkg/markerpoint"
	"github.com/plotmark/plotmark/pkg/observability"
	"github.com/plotmark/plotmark/pkg/render/sink"
)

const (
	defaultScale    = 1.0            // PNG raster scale factor
	defaultCacheTTL = 24 * time.Hour // artifact cache entry lifetime
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats: "svg", "png"
	scale      float64  // raster scale factor for PNG output
	background string   // background color, empty for transparent SVG
	useCache   bool     // reuse cached artifacts keyed by spec hash
	cacheDir   string   // override for the artifact cache directory
}

// newRenderCmd creates the render command for generating chart artifacts.
// It reads a TOML chart spec, builds the chart view and marker overlay, and
// encodes the scene to the requested formats.
//
// Default settings:
//   - format: svg
//   - scale: 1.0
//   - cache: disabled
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		scale: defaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [spec.toml]",
		Short: "Render a chart spec to SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG output")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color (e.g. #FFFFFF)")
	cmd.Flags().BoolVar(&opts.useCache, "cache", false, "reuse cached artifacts for unchanged specs")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "artifact cache directory (default: user cache dir)")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg' or 'png')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the spec, builds the chart once, and writes one artifact
// per requested format. When caching is enabled, artifacts are keyed by the
// hash of the raw spec bytes so unchanged specs skip the encode entirely.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Rendering %s", input)

	raw, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", input)
		}
		return err
	}
	specHash := cache.Hash(raw)

	spec, err := config.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded spec: %d rows, marker=%v", len(spec.Rows), spec.Marker != nil)

	store, err := openCache(opts)
	if err != nil {
		return err
	}
	defer store.Close()

	var built *builtChart
	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		outputPath := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			outputPath = opts.output
		}
		if err := errors.ValidateOutputPath(outputPath); err != nil {
			return err
		}

		key := cache.ArtifactKey(specHash, format, opts.scale)
		data, hit, err := store.Get(ctx, key)
		if err != nil {
			logger.Warnf("Cache read failed: %v", err)
		}
		if !hit {
			if built == nil {
				built, err = buildChart(spec)
				if err != nil {
					return err
				}
			}
			data, err = encodeArtifact(ctx, built, format, opts)
			if err != nil {
				return err
			}
			if err := store.Set(ctx, key, data, defaultCacheTTL); err != nil {
				logger.Warnf("Cache write failed: %v", err)
			}
		}

		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		printArtifact(outputPath, len(data), hit)
	}

	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(opts.formats)))
	return nil
}

// builtChart pairs a chart view with its optional marker overlay so a single
// build can feed multiple encoders.
type builtChart struct {
	view    *chart.View
	overlay *markerpoint.Overlay
}

// buildChart constructs the view and overlay from a validated spec.
func buildChart(spec *config.Spec) (*builtChart, error) {
	view, overlay, err := spec.Build()
	if err != nil {
		return nil, err
	}
	return &builtChart{view: view, overlay: overlay}, nil
}

// encodeArtifact encodes the built chart to the requested format, reporting
// timings through the render hooks.
func encodeArtifact(ctx context.Context, b *builtChart, format string, opts *renderOpts) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnEncodeStart(ctx, format)
	start := time.Now()

	var data []byte
	var err error
	switch format {
	case "svg":
		var svgOpts []sink.SVGOption
		if opts.background != "" {
			svgOpts = append(svgOpts, sink.WithBackground(opts.background))
		}
		data = sink.SVG(b.view.Canvas(), svgOpts...)
	case "png":
		pngOpts := []sink.PNGOption{sink.WithPNGScale(opts.scale)}
		if opts.background != "" {
			pngOpts = append(pngOpts, sink.WithPNGBackground(opts.background))
		}
		data, err = sink.PNG(b.view.Canvas(), pngOpts...)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
	}

	hooks.OnEncodeComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode %s", format)
	}
	return data, nil
}

// openCache returns the artifact cache selected by the flags: a file cache
// when --cache is set, otherwise a null cache that always misses.
func openCache(opts *renderOpts) (cache.Cache, error) {
	if !opts.useCache {
		return cache.NewNullCache(), nil
	}
	dir := opts.cacheDir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return nil, err
		}
	}
	return cache.NewFileCache(dir)
}
