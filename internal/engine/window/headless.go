package window

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/flycubes/internal/engine/input"
	"github.com/Faultbox/flycubes/internal/logger"
)

// headlessWindow has no OS window or GL context. It reports ShouldClose
// after a fixed number of polls, for smoke runs on machines without a display.
type headlessWindow struct {
	width, height int
	frames        int
	polls         int
	closed        bool
	start         time.Time
	log           *zap.Logger
}

func newHeadless(cfg Config) *headlessWindow {
	w := &headlessWindow{
		width:  cfg.Width,
		height: cfg.Height,
		frames: cfg.Frames,
		start:  time.Now(),
		log:    logger.Named("window"),
	}
	w.log.Info("window created",
		zap.String("backend", BackendHeadless),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("frames", cfg.Frames),
	)
	return w
}

func (w *headlessWindow) ShouldClose() bool {
	return w.closed || (w.frames > 0 && w.polls >= w.frames)
}

func (w *headlessWindow) RequestClose() { w.closed = true }

func (w *headlessWindow) PollEvents() { w.polls++ }

func (w *headlessWindow) KeyHeld(input.Key) bool { return false }

func (w *headlessWindow) SwapBuffers() {}

func (w *headlessWindow) Time() float64 { return time.Since(w.start).Seconds() }

func (w *headlessWindow) HasContext() bool { return false }

func (w *headlessWindow) SetCursorHandler(CursorHandler) {}

func (w *headlessWindow) SetResizeHandler(ResizeHandler) {}

func (w *headlessWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *headlessWindow) Close() {
	w.log.Info("closing window", zap.Int("frames", w.polls))
}
