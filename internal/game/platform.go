package game

import (
	"github.com/Faultbox/flycubes/internal/engine/input"
	"github.com/Faultbox/flycubes/pkg/math"
)

// Platform is the window system as seen by the frame loop.
// Input callbacks registered elsewhere fire during PollEvents on the loop goroutine.
type Platform interface {
	ShouldClose() bool
	RequestClose()
	PollEvents()
	KeyHeld(k input.Key) bool
	SwapBuffers()
	// Time returns monotonic seconds since startup.
	Time() float64
}

// Submitter receives the GPU work of one frame, in call order.
type Submitter interface {
	BeginFrame()
	SetProjection(m math.Mat4)
	SetView(m math.Mat4)
	SetModel(m math.Mat4)
	DrawIndexedTriangles(count int32)
	EndFrame()
}
