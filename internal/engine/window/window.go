// Package window creates the OS window and OpenGL context and turns platform
// events into cursor, resize and key state.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/flycubes/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL      = "sdl"
	BackendGLFW     = "glfw"
	BackendHeadless = "headless"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
	Frames     int // headless only
}

// CursorHandler receives absolute cursor positions in screen units.
type CursorHandler func(x, y float64)

// ResizeHandler receives the new framebuffer size in pixels.
type ResizeHandler func(width, height int)

// Window is an OS window with a current OpenGL context. Handlers run on the
// calling goroutine from inside PollEvents.
type Window interface {
	ShouldClose() bool
	RequestClose()
	PollEvents()
	KeyHeld(k input.Key) bool
	SwapBuffers()
	Time() float64

	SetCursorHandler(h CursorHandler)
	SetResizeHandler(h ResizeHandler)
	FramebufferSize() (width, height int)

	// HasContext reports whether a real OpenGL context is current.
	HasContext() bool
	Close()
}

// New opens a window using cfg.Backend. An empty backend selects SDL.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	case BackendHeadless:
		return newHeadless(cfg), nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
