package game

import "testing"

func TestClockTick(t *testing.T) {
	readings := []float64{1.0, 1.25, 1.25, 0.5, 2.0}
	i := 0
	now := func() float64 {
		v := readings[i]
		i++
		return v
	}

	c := NewClock(now)
	want := []float64{0.25, 0, 0, 1.5}
	for n, w := range want {
		if got := c.Tick(); got != w {
			t.Errorf("tick %d = %v, want %v", n, got, w)
		}
	}
}
