package game

import (
	"github.com/Faultbox/flycubes/pkg/math"
)

// Recorder is a Submitter that keeps the calls of the most recent frame
// instead of drawing. It backs the headless mode and tests.
type Recorder struct {
	Projection math.Mat4
	View       math.Mat4
	Models     []math.Mat4
	Draws      []int32

	// Calls lists the method names of the most recent frame in order.
	Calls []string

	Frames     int
	TotalDraws int
}

// BeginFrame starts a new frame, discarding the previous one.
func (r *Recorder) BeginFrame() {
	r.Models = r.Models[:0]
	r.Draws = r.Draws[:0]
	r.Calls = append(r.Calls[:0], "BeginFrame")
}

// SetProjection records the projection matrix.
func (r *Recorder) SetProjection(m math.Mat4) {
	r.Projection = m
	r.Calls = append(r.Calls, "SetProjection")
}

// SetView records the view matrix.
func (r *Recorder) SetView(m math.Mat4) {
	r.View = m
	r.Calls = append(r.Calls, "SetView")
}

// SetModel records a model matrix.
func (r *Recorder) SetModel(m math.Mat4) {
	r.Models = append(r.Models, m)
	r.Calls = append(r.Calls, "SetModel")
}

// DrawIndexedTriangles records a draw.
func (r *Recorder) DrawIndexedTriangles(count int32) {
	r.Draws = append(r.Draws, count)
	r.TotalDraws++
	r.Calls = append(r.Calls, "DrawIndexedTriangles")
}

// EndFrame completes the frame.
func (r *Recorder) EndFrame() {
	r.Frames++
	r.Calls = append(r.Calls, "EndFrame")
}
