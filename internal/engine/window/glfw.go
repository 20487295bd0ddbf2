package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/flycubes/internal/engine/input"
	"github.com/Faultbox/flycubes/internal/logger"
)

var glfwKeys = [...]struct {
	key  glfw.Key
	want input.Key
}{
	{glfw.KeyW, input.KeyW},
	{glfw.KeyA, input.KeyA},
	{glfw.KeyS, input.KeyS},
	{glfw.KeyD, input.KeyD},
	{glfw.KeyEscape, input.KeyEscape},
}

// glfwWindow wraps a GLFW window with a current OpenGL context.
type glfwWindow struct {
	window *glfw.Window
	log    *zap.Logger
	keys   input.State

	onCursor CursorHandler
	onResize ResizeHandler
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	log := logger.Named("window")

	log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompat, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{window: win, log: log}

	// Capture the cursor for mouse look.
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if w.onCursor != nil {
			w.onCursor(xpos, ypos)
		}
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	log.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *glfwWindow) ShouldClose() bool { return w.window.ShouldClose() }

func (w *glfwWindow) RequestClose() { w.window.SetShouldClose(true) }

func (w *glfwWindow) KeyHeld(k input.Key) bool { return w.keys.Held(k) }

func (w *glfwWindow) SwapBuffers() { w.window.SwapBuffers() }

func (w *glfwWindow) Time() float64 { return glfw.GetTime() }

func (w *glfwWindow) HasContext() bool { return true }

func (w *glfwWindow) SetCursorHandler(h CursorHandler) { w.onCursor = h }

func (w *glfwWindow) SetResizeHandler(h ResizeHandler) { w.onResize = h }

func (w *glfwWindow) FramebufferSize() (int, int) { return w.window.GetFramebufferSize() }

// PollEvents processes pending events, firing callbacks, then samples the
// movement keys.
func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
	for _, k := range glfwKeys {
		if w.window.GetKey(k.key) == glfw.Press {
			w.keys.Press(k.want)
		} else {
			w.keys.Release(k.want)
		}
	}
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	w.log.Info("closing window")
	w.window.Destroy()
	glfw.Terminate()
}
