package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logRenderHooks logs encode timings at debug level.
type logRenderHooks struct {
	logger *log.Logger
}

func (h *logRenderHooks) OnEncodeStart(_ context.Context, format string) {
	h.logger.Debugf("Encoding %s", format)
}

func (h *logRenderHooks) OnEncodeComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Errorf("Encode %s failed: %v", format, err)
		return
	}
	h.logger.Debugf("Encoded %s: %d bytes (%s)", format, size, d.Round(time.Millisecond))
}

// logOverlayHooks logs overlay rebuilds and marker state transitions at
// debug level.
type logOverlayHooks struct {
	logger *log.Logger
}

func (h *logOverlayHooks) OnRender(overlay string, matched, targets int) {
	h.logger.Debugf("Overlay %s rendered %d/%d markers", overlay, matched, targets)
}

func (h *logOverlayHooks) OnStateChange(overlay, marker, state string) {
	h.logger.Debugf("Overlay %s: %s -> %s", overlay, marker, state)
}
