package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/plotmark/plotmark/pkg/cache"
	"github.com/plotmark/plotmark/pkg/config"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string  // listen address
	redisAddr  string  // optional Redis address for the artifact cache
	scale      float64 // raster scale factor for PNG responses
	background string  // background color for rendered responses
}

// newServeCmd creates the serve command, an HTTP preview server that
// re-renders the spec file on every request. Edit the spec, reload the
// browser. Artifacts are cached by spec-file hash, so an unchanged spec
// never re-encodes; by default the cache is a file cache under the user
// cache dir, and --redis switches it to a shared Redis instance.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:  ":8080",
		scale: defaultScale,
	}

	cmd := &cobra.Command{
		Use:   "serve [spec.toml]",
		Short: "Serve a live chart preview over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the artifact cache (e.g. localhost:6379)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG responses")
	cmd.Flags().StringVar(&opts.background, "background", "#FFFFFF", "background color")

	return cmd
}

// runServe starts the preview server and blocks until ctx is canceled.
func runServe(ctx context.Context, specPath string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	store, err := serveCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &previewServer{
		specPath: specPath,
		opts:     opts,
		store:    store,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", srv.handleIndex)
	r.Get("/chart.svg", srv.handleArtifact("svg"))
	r.Get("/chart.png", srv.handleArtifact("png"))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	printInfo("Serving %s on http://localhost%s", specPath, opts.addr)
	logger.Infof("Preview server listening on %s", opts.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// serveCache selects the artifact cache for the preview server: Redis when
// --redis is set, otherwise a file cache under the user cache dir.
func serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// previewServer renders the spec file on demand.
type previewServer struct {
	specPath string
	opts     *serveOpts
	store    cache.Cache
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>plotmark preview</title></head>
<body style="margin:0;display:grid;place-items:center;min-height:100vh;background:#F5F5F5">
<img src="/chart.svg" alt="chart preview">
</body>
</html>
`

func (s *previewServer) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

// handleArtifact renders (or serves the cached copy of) the spec in the
// given format.
func (s *previewServer) handleArtifact(format string) http.HandlerFunc {
	contentType := map[string]string{
		"svg": "image/svg+xml",
		"png": "image/png",
	}[format]

	return func(w http.ResponseWriter, r *http.Request) {
		data, err := s.render(r.Context(), format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(data)
	}
}

// render re-reads the spec file so edits show up on refresh, consulting the
// artifact cache keyed by the file's content hash.
func (s *previewServer) render(ctx context.Context, format string) ([]byte, error) {
	raw, err := os.ReadFile(s.specPath)
	if err != nil {
		return nil, err
	}
	key := cache.ArtifactKey(cache.Hash(raw), format, s.opts.scale)

	switch data, err := cache.Fetch(ctx, s.store, key); {
	case err == nil:
		return data, nil
	case !errors.Is(err, cache.ErrCacheMiss):
		return nil, err
	}

	spec, err := config.Load(s.specPath)
	if err != nil {
		return nil, err
	}
	built, err := buildChart(spec)
	if err != nil {
		return nil, err
	}
	data, err := encodeArtifact(ctx, built, format, &renderOpts{
		scale:      s.opts.scale,
		background: s.opts.background,
	})
	if err != nil {
		return nil, err
	}
	_ = s.store.Set(ctx, key, data, defaultCacheTTL)
	return data, nil
}
