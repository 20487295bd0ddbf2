package window

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/flycubes/internal/engine/input"
	"github.com/Faultbox/flycubes/internal/logger"
)

var sdlKeys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_W:      input.KeyW,
	sdl.SCANCODE_A:      input.KeyA,
	sdl.SCANCODE_S:      input.KeyS,
	sdl.SCANCODE_D:      input.KeyD,
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
}

// sdlWindow wraps an SDL2 window and OpenGL context.
type sdlWindow struct {
	window    *sdl.Window
	glContext sdl.GLContext
	start     time.Time
	log       *zap.Logger

	keys        input.State
	shouldClose bool

	// In relative mouse mode SDL reports motion deltas; they are summed
	// into a virtual absolute cursor.
	cursorX, cursorY float64
	onCursor         CursorHandler
	onResize         ResizeHandler
}

func newSDL(cfg Config) (*sdlWindow, error) {
	log := logger.Named("window")

	log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	win, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	// Capture the cursor for mouse look.
	sdl.SetRelativeMouseMode(true)

	log.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return &sdlWindow{
		window:    win,
		glContext: ctx,
		start:     time.Now(),
		log:       log,
		cursorX:   float64(cfg.Width) / 2,
		cursorY:   float64(cfg.Height) / 2,
	}, nil
}

func (w *sdlWindow) ShouldClose() bool { return w.shouldClose }

func (w *sdlWindow) RequestClose() { w.shouldClose = true }

func (w *sdlWindow) KeyHeld(k input.Key) bool { return w.keys.Held(k) }

func (w *sdlWindow) SwapBuffers() { w.window.GLSwap() }

func (w *sdlWindow) Time() float64 { return time.Since(w.start).Seconds() }

func (w *sdlWindow) HasContext() bool { return true }

func (w *sdlWindow) SetCursorHandler(h CursorHandler) { w.onCursor = h }

func (w *sdlWindow) SetResizeHandler(h ResizeHandler) { w.onResize = h }

func (w *sdlWindow) FramebufferSize() (int, int) {
	dw, dh := w.window.GLGetDrawableSize()
	return int(dw), int(dh)
}

// PollEvents drains the SDL queue, updating key state and firing handlers.
func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				if w.onResize != nil {
					w.onResize(w.FramebufferSize())
				}
			}

		case *sdl.KeyboardEvent:
			key, ok := sdlKeys[e.Keysym.Scancode]
			if !ok {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				w.keys.Press(key)
			} else if e.Type == sdl.KEYUP {
				w.keys.Release(key)
			}

		case *sdl.MouseMotionEvent:
			w.cursorX += float64(e.XRel)
			w.cursorY += float64(e.YRel)
			if w.onCursor != nil {
				w.onCursor(w.cursorX, w.cursorY)
			}
		}
	}
}

// Close destroys the window and cleans up SDL2.
func (w *sdlWindow) Close() {
	w.log.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}
