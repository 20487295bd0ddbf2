// Package camera provides the free-fly camera used to look around the scene.
package camera

import (
	gomath "math"

	"github.com/Faultbox/flycubes/pkg/math"
)

// Defaults for a camera created with Default.
const (
	DefaultSensitivity = 0.001 // radians per cursor unit
	DefaultPitchLimit  = 1.55  // just inside pi/2
)

// DefaultPosition is the starting eye position of a default camera.
var DefaultPosition = math.Vec3{X: 0, Y: 0, Z: 3}

// CursorTracker turns absolute cursor positions into offsets.
// The first position only seeds the tracker and yields a zero offset.
type CursorTracker struct {
	lastX, lastY float32
	initialized  bool
}

// Offset returns the movement since the previous position. Y is inverted so
// that moving the cursor up (screen Y decreasing) gives a positive offset.
func (t *CursorTracker) Offset(x, y float32) (dx, dy float32) {
	if !t.initialized {
		t.lastX, t.lastY = x, y
		t.initialized = true
		return 0, 0
	}
	dx = x - t.lastX
	dy = t.lastY - y
	t.lastX, t.lastY = x, y
	return dx, dy
}

// Initialized reports whether the tracker has seen a position.
func (t *CursorTracker) Initialized() bool {
	return t.initialized
}

// Reset forgets the last position, so the next one seeds again.
func (t *CursorTracker) Reset() {
	t.initialized = false
}

// Options configures a FlyCamera.
type Options struct {
	Position    math.Vec3
	Sensitivity float32
	PitchLimit  float32
}

// FlyCamera is an Euler-angle camera driven by cursor movement and
// ground-plane walking. Pitch is hard clamped short of +-pi/2, so the look
// vector never lines up with the world up axis.
//
// FlyCamera is not safe for concurrent use; input callbacks and the frame
// loop must run on the same goroutine.
type FlyCamera struct {
	position math.Vec3
	yaw      float32 // radians, unbounded
	pitch    float32 // radians, within [-pitchLimit, pitchLimit]

	// Derived from yaw/pitch, unit length.
	front   math.Vec3
	forward math.Vec3 // front projected onto the XZ plane
	up      math.Vec3

	sensitivity float32
	pitchLimit  float32

	cursor CursorTracker
}

// New creates a camera at opts.Position looking down -Z.
// Zero Sensitivity or PitchLimit fall back to the defaults.
func New(opts Options) *FlyCamera {
	if opts.Sensitivity == 0 {
		opts.Sensitivity = DefaultSensitivity
	}
	if opts.PitchLimit <= 0 {
		opts.PitchLimit = DefaultPitchLimit
	}
	return &FlyCamera{
		position:    opts.Position,
		yaw:         -gomath.Pi / 2,
		front:       math.Vec3{X: 0, Y: 0, Z: -1},
		forward:     math.Vec3{X: 0, Y: 0, Z: -1},
		up:          math.Up,
		sensitivity: opts.Sensitivity,
		pitchLimit:  opts.PitchLimit,
	}
}

// Default creates a camera with the stock settings at DefaultPosition.
func Default() *FlyCamera {
	return New(Options{Position: DefaultPosition})
}

// OnCursor handles a cursor position event from the window system.
// x and y are absolute cursor coordinates.
func (c *FlyCamera) OnCursor(x, y float64) {
	dx, dy := c.cursor.Offset(float32(x), float32(y))
	if dx == 0 && dy == 0 {
		return
	}
	c.Look(dx*c.sensitivity, dy*c.sensitivity)
}

// Look adds yaw and pitch offsets in radians and re-derives the basis.
func (c *FlyCamera) Look(yawOffset, pitchOffset float32) {
	c.yaw += yawOffset
	c.pitch += pitchOffset

	if c.pitch > c.pitchLimit {
		c.pitch = c.pitchLimit
	}
	if c.pitch < -c.pitchLimit {
		c.pitch = -c.pitchLimit
	}

	c.updateVectors()
}

func (c *FlyCamera) updateVectors() {
	cy := float32(gomath.Cos(float64(c.yaw)))
	sy := float32(gomath.Sin(float64(c.yaw)))
	cp := float32(gomath.Cos(float64(c.pitch)))
	sp := float32(gomath.Sin(float64(c.pitch)))

	c.front = math.Vec3{X: cy * cp, Y: sp, Z: sy * cp}.Normalize()
	c.forward = math.Vec3{X: cy, Y: 0, Z: sy}.Normalize()
}

// MoveForward walks along the planar forward direction. Negative speed walks back.
func (c *FlyCamera) MoveForward(speed float32) {
	c.position = c.position.Add(c.forward.Scale(speed))
}

// MoveRight strafes along the planar right direction. Negative speed strafes left.
func (c *FlyCamera) MoveRight(speed float32) {
	c.position = c.position.Add(c.Right().Scale(speed))
}

// ViewMatrix returns the world-to-eye transform for the current state.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.front), c.up)
}

// Right returns the planar right direction, forward x up.
func (c *FlyCamera) Right() math.Vec3 {
	return c.forward.Cross(c.up).Normalize()
}

// Position returns the eye position.
func (c *FlyCamera) Position() math.Vec3 { return c.position }

// SetPosition moves the eye without changing orientation.
func (c *FlyCamera) SetPosition(p math.Vec3) { c.position = p }

// Front returns the unit look direction.
func (c *FlyCamera) Front() math.Vec3 { return c.front }

// Forward returns the unit look direction flattened onto the ground plane.
func (c *FlyCamera) Forward() math.Vec3 { return c.forward }

// Up returns the world up axis.
func (c *FlyCamera) Up() math.Vec3 { return c.up }

// Yaw returns the horizontal look angle in radians.
func (c *FlyCamera) Yaw() float32 { return c.yaw }

// Pitch returns the vertical look angle in radians.
func (c *FlyCamera) Pitch() float32 { return c.pitch }
