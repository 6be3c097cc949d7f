package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// consoleHooks streams generation progress to the terminal: one styled
// line per artifact plus a debug summary per platform. Generation is
// single-threaded, so the counter needs no locking.
type consoleHooks struct {
	logger *log.Logger
	total  int
}

func (h *consoleHooks) OnPlatformStart(_ context.Context, platform string) {
	h.logger.Debug("generating", "platform", platform)
}

func (h *consoleHooks) OnArtifact(_ context.Context, _ string, path string) {
	h.total++
	printFile(path)
}

func (h *consoleHooks) OnPlatformComplete(_ context.Context, platform string, artifacts int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("platform failed", "platform", platform, "error", err)
		return
	}
	h.logger.Debug("platform complete", "platform", platform, "artifacts", artifacts, "elapsed", d.Round(time.Millisecond))
}
