// Package main is the entry point for the flycubes viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/flycubes/internal/config"
	"github.com/Faultbox/flycubes/internal/engine/camera"
	"github.com/Faultbox/flycubes/internal/engine/instance"
	"github.com/Faultbox/flycubes/internal/engine/renderer"
	"github.com/Faultbox/flycubes/internal/engine/shader"
	"github.com/Faultbox/flycubes/internal/engine/window"
	"github.com/Faultbox/flycubes/internal/game"
	"github.com/Faultbox/flycubes/internal/logger"
	"github.com/Faultbox/flycubes/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== flycubes ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("fatal", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Backend:    cfg.Window.Backend,
		Frames:     cfg.Window.Frames,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	gpu, closeGPU, err := newSubmitter(cfg, win)
	if err != nil {
		return err
	}
	defer closeGPU()

	cam := camera.New(camera.Options{
		Position:    vec3(cfg.Camera.Position),
		Sensitivity: cfg.Camera.Sensitivity,
		PitchLimit:  cfg.Camera.PitchLimit,
	})
	win.SetCursorHandler(cam.OnCursor)

	layout := instance.Layout{
		Bounds: instance.Bounds{
			Min: vec3(cfg.Scene.BoundsMin),
			Max: vec3(cfg.Scene.BoundsMax),
		},
		RotationStep: cfg.Scene.RotationStep,
		Axis:         vec3(cfg.Scene.RotationAxis),
	}
	instances := layout.Generate(cfg.Scene.Instances, instance.NewSource(cfg.Scene.Seed))

	opts := game.DefaultOptions()
	opts.Width = cfg.Window.Width
	opts.Height = cfg.Window.Height
	opts.FovY = cfg.Projection.FovY
	opts.Near = cfg.Projection.Near
	opts.Far = cfg.Projection.Far
	opts.MoveSpeed = cfg.Camera.MoveSpeed

	game.New(opts, win, gpu, cam, layout, instances).Run()
	return nil
}

// newSubmitter returns the OpenGL renderer, or a Recorder when the window
// has no GL context.
func newSubmitter(cfg *config.Config, win window.Window) (game.Submitter, func(), error) {
	if !win.HasContext() {
		logger.Info("no OpenGL context, recording frames only")
		return &game.Recorder{}, func() {}, nil
	}

	vertSrc := loadShader(cfg.Assets.VertexShader, shader.DefaultVertexShader)
	fragSrc := loadShader(cfg.Assets.FragmentShader, shader.DefaultFragmentShader)

	textures := make([]renderer.TextureSource, len(cfg.Assets.Textures))
	for i, t := range cfg.Assets.Textures {
		textures[i] = renderer.TextureSource{Path: t.Path, FlipY: t.FlipY}
	}

	fbW, fbH := win.FramebufferSize()
	r, err := renderer.New(renderer.Config{
		Width:          fbW,
		Height:         fbH,
		VertexShader:   vertSrc,
		FragmentShader: fragSrc,
		Textures:       textures,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating renderer: %w", err)
	}
	win.SetResizeHandler(r.Resize)
	return r, r.Close, nil
}

// loadShader reads a shader file. A read failure is logged and yields empty
// source, so compilation fails and the renderer draws nothing.
func loadShader(path, fallback string) string {
	src, err := shader.LoadSource(path, fallback)
	if err != nil {
		logger.Error("failed to load shader", zap.String("path", path), zap.Error(err))
		return ""
	}
	return src
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
