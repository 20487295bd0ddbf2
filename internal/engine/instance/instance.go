// Package instance lays out copies of a single mesh in the scene.
package instance

import (
	"math/rand/v2"
	"time"

	"github.com/Faultbox/flycubes/pkg/math"
)

// Defaults matching the stock scene.
const (
	DefaultCount        = 10
	DefaultRotationStep = 0.35 // radians per instance index
)

// DefaultAxis is the shared rotation axis of all instances.
var DefaultAxis = math.Vec3{X: 1, Y: 0.3, Z: 0.5}

// Instance is one positioned copy of the mesh.
// Position is fixed at generation time; Index selects the rotation.
type Instance struct {
	Position math.Vec3
	Index    int
}

// Bounds is an axis-aligned box that instance positions are drawn from.
type Bounds struct {
	Min, Max math.Vec3
}

// DefaultBounds returns the box in front of the origin, facing the default camera.
func DefaultBounds() Bounds {
	return Bounds{
		Min: math.Vec3{X: -2, Y: -2, Z: -5},
		Max: math.Vec3{X: 2, Y: 2, Z: 0},
	}
}

// Contains reports whether p lies inside b, boundaries included.
func (b Bounds) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Layout generates instances and their per-frame model matrices.
type Layout struct {
	Bounds       Bounds
	RotationStep float32
	Axis         math.Vec3
}

// DefaultLayout returns the stock layout.
func DefaultLayout() Layout {
	return Layout{
		Bounds:       DefaultBounds(),
		RotationStep: DefaultRotationStep,
		Axis:         DefaultAxis,
	}
}

// NewSource returns a random source for Generate. A zero seed seeds from the
// wall clock, so layouts differ between runs.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns count instances with uniformly random positions inside
// the layout bounds, indexed 0..count-1.
func (l Layout) Generate(count int, rng *rand.Rand) []Instance {
	if count <= 0 {
		return nil
	}
	instances := make([]Instance, count)
	for i := range instances {
		instances[i] = Instance{
			Position: math.Vec3{
				X: between(rng, l.Bounds.Min.X, l.Bounds.Max.X),
				Y: between(rng, l.Bounds.Min.Y, l.Bounds.Max.Y),
				Z: between(rng, l.Bounds.Min.Z, l.Bounds.Max.Z),
			},
			Index: i,
		}
	}
	return instances
}

func between(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// ModelMatrix returns translate(position) * rotate(step*index, axis).
// It is recomputed from the stored position on every call, so repeated calls
// never accumulate error.
func (l Layout) ModelMatrix(inst Instance) math.Mat4 {
	m := math.Identity()
	m.Translate(inst.Position)
	m.Rotate(l.RotationStep*float32(inst.Index), l.Axis)
	return m
}

// ModelMatrices computes the model matrix of every instance in order,
// reusing dst when it has enough capacity.
func (l Layout) ModelMatrices(instances []Instance, dst []math.Mat4) []math.Mat4 {
	dst = dst[:0]
	for _, inst := range instances {
		dst = append(dst, l.ModelMatrix(inst))
	}
	return dst
}
