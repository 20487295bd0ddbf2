// Package game implements the per-frame loop that drives the camera and
// feeds the renderer.
package game

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/flycubes/internal/engine/camera"
	"github.com/Faultbox/flycubes/internal/engine/input"
	"github.com/Faultbox/flycubes/internal/engine/instance"
	"github.com/Faultbox/flycubes/internal/logger"
	"github.com/Faultbox/flycubes/pkg/math"
)

// State is the loop's lifecycle state.
type State int

const (
	// StateRunning renders a frame per iteration.
	StateRunning State = iota
	// StateTerminating is terminal; the caller tears down GPU and window resources.
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// DefaultMoveSpeed is the walking speed in world units per second.
const DefaultMoveSpeed = 2.5

// Options configures a Loop.
type Options struct {
	Width, Height int

	FovY, Near, Far float32

	MoveSpeed  float32
	IndexCount int32 // indices drawn per instance
}

// DefaultOptions returns the stock 800x600 setup drawing the 36-index cube.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		FovY:       gomath.Pi / 4,
		Near:       0.1,
		Far:        100,
		MoveSpeed:  DefaultMoveSpeed,
		IndexCount: 36,
	}
}

// Loop sequences the work of each frame: time, close check, input, camera,
// view and model matrices, submission.
type Loop struct {
	opts     Options
	platform Platform
	gpu      Submitter

	camera    *camera.FlyCamera
	layout    instance.Layout
	instances []instance.Instance

	clock      *Clock
	state      State
	projection math.Mat4
	models     []math.Mat4

	frames     uint64
	statFrames int
	statStart  float64
	log        *zap.Logger
}

// New finishes setup and returns a running loop. The projection is computed
// here once from the window aspect ratio.
func New(opts Options, platform Platform, gpu Submitter, cam *camera.FlyCamera,
	layout instance.Layout, instances []instance.Instance) *Loop {
	aspect := float32(opts.Width) / float32(opts.Height)

	l := &Loop{
		opts:       opts,
		platform:   platform,
		gpu:        gpu,
		camera:     cam,
		layout:     layout,
		instances:  instances,
		clock:      NewClock(platform.Time),
		state:      StateRunning,
		projection: math.Perspective(opts.FovY, aspect, opts.Near, opts.Far),
		models:     make([]math.Mat4, 0, len(instances)),
		log:        logger.Named("loop"),
	}
	l.statStart = platform.Time()

	l.log.Info("frame loop ready",
		zap.Int("instances", len(instances)),
		zap.Float32("aspect", aspect),
	)
	return l
}

// State returns the current lifecycle state.
func (l *Loop) State() State { return l.state }

// Frames returns the number of frames rendered.
func (l *Loop) Frames() uint64 { return l.frames }

// Projection returns the constant projection matrix.
func (l *Loop) Projection() math.Mat4 { return l.projection }

// Run renders frames until the platform asks to close.
func (l *Loop) Run() {
	l.log.Info("starting frame loop")
	for l.state == StateRunning {
		l.Frame()
	}
	l.log.Info("frame loop stopped", zap.Uint64("frames", l.frames))
}

// Frame runs one iteration. It does nothing once the loop is terminating.
func (l *Loop) Frame() {
	if l.state != StateRunning {
		return
	}

	dt := l.clock.Tick()

	if l.platform.ShouldClose() {
		l.state = StateTerminating
		return
	}

	l.processInput(float32(dt))

	view := l.camera.ViewMatrix()
	l.models = l.layout.ModelMatrices(l.instances, l.models)
	l.submit(view)

	l.platform.SwapBuffers()
	l.platform.PollEvents()

	l.frames++
	l.stats()
}

// processInput walks the camera for held movement keys.
func (l *Loop) processInput(dt float32) {
	speed := l.opts.MoveSpeed * dt

	if l.platform.KeyHeld(input.KeyW) {
		l.camera.MoveForward(speed)
	}
	if l.platform.KeyHeld(input.KeyA) {
		l.camera.MoveRight(-speed)
	}
	if l.platform.KeyHeld(input.KeyS) {
		l.camera.MoveForward(-speed)
	}
	if l.platform.KeyHeld(input.KeyD) {
		l.camera.MoveRight(speed)
	}
	if l.platform.KeyHeld(input.KeyEscape) {
		l.platform.RequestClose()
	}
}

// submit hands this frame's matrices to the GPU in instance order.
func (l *Loop) submit(view math.Mat4) {
	l.gpu.BeginFrame()
	l.gpu.SetProjection(l.projection)
	l.gpu.SetView(view)
	for i := range l.models {
		l.gpu.SetModel(l.models[i])
		l.gpu.DrawIndexedTriangles(l.opts.IndexCount)
	}
	l.gpu.EndFrame()
}

// stats logs the frame rate about once per second.
func (l *Loop) stats() {
	l.statFrames++
	now := l.platform.Time()
	if elapsed := now - l.statStart; elapsed >= 1 {
		l.log.Debug("fps",
			zap.Float64("fps", float64(l.statFrames)/elapsed),
			zap.Uint64("frames", l.frames),
			zap.Float32("x", l.camera.Position().X),
			zap.Float32("y", l.camera.Position().Y),
			zap.Float32("z", l.camera.Position().Z),
		)
		l.statFrames = 0
		l.statStart = now
	}
}
