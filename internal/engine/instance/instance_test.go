package instance

import (
	"testing"

	"github.com/Faultbox/flycubes/pkg/math"
)

func TestGenerateCountAndBounds(t *testing.T) {
	l := DefaultLayout()
	b := DefaultBounds()

	// Statistical check over many time-seeded runs.
	for run := 0; run < 50; run++ {
		got := l.Generate(DefaultCount, NewSource(0))
		if len(got) != DefaultCount {
			t.Fatalf("Generate(%d) returned %d instances", DefaultCount, len(got))
		}
		for i, inst := range got {
			if inst.Index != i {
				t.Errorf("instance %d has index %d", i, inst.Index)
			}
			if !b.Contains(inst.Position) {
				t.Errorf("instance %d at %v outside %v", i, inst.Position, b)
			}
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	l := DefaultLayout()
	a := l.Generate(DefaultCount, NewSource(42))
	b := l.Generate(DefaultCount, NewSource(42))

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("instance %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}

	c := l.Generate(DefaultCount, NewSource(43))
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestGenerateEmpty(t *testing.T) {
	if got := DefaultLayout().Generate(0, NewSource(1)); len(got) != 0 {
		t.Errorf("Generate(0) returned %d instances", len(got))
	}
}

func TestGenerateCustomBounds(t *testing.T) {
	l := Layout{
		Bounds: Bounds{Min: math.Vec3{X: 10, Y: 10, Z: 10}, Max: math.Vec3{X: 11, Y: 12, Z: 13}},
	}
	for _, inst := range l.Generate(100, NewSource(7)) {
		if !l.Bounds.Contains(inst.Position) {
			t.Errorf("position %v outside %v", inst.Position, l.Bounds)
		}
	}
}

func TestModelMatrixIndexZero(t *testing.T) {
	l := DefaultLayout()
	pos := math.Vec3{X: 1.5, Y: -0.5, Z: -3}

	got := l.ModelMatrix(Instance{Position: pos, Index: 0})
	want := math.Translate(pos.X, pos.Y, pos.Z)
	if !got.ApproxEqual(want, 0) {
		t.Errorf("ModelMatrix(index 0) = %v, want %v", got, want)
	}
}

func TestModelMatrixIndexOne(t *testing.T) {
	l := DefaultLayout()
	pos := math.Vec3{X: -1, Y: 2, Z: -4}

	got := l.ModelMatrix(Instance{Position: pos, Index: 1})
	want := math.Translate(pos.X, pos.Y, pos.Z).Mul(math.RotateAxis(math.Vec3{X: 1, Y: 0.3, Z: 0.5}, 0.35))
	if !got.ApproxEqual(want, 1e-6) {
		t.Errorf("ModelMatrix(index 1) = %v, want %v", got, want)
	}

	// The mesh origin lands on the instance position.
	if o := got.TransformPoint(math.Vec3{}); o.Sub(pos).Length() > 1e-6 {
		t.Errorf("origin maps to %v, want %v", o, pos)
	}
}

func TestModelMatrixStable(t *testing.T) {
	l := DefaultLayout()
	inst := Instance{Position: math.Vec3{X: 0.3, Y: 0.2, Z: -1}, Index: 7}
	first := l.ModelMatrix(inst)
	for i := 0; i < 1000; i++ {
		if got := l.ModelMatrix(inst); got != first {
			t.Fatalf("call %d returned %v, want %v", i, got, first)
		}
	}
}

func TestModelMatrices(t *testing.T) {
	l := DefaultLayout()
	insts := l.Generate(DefaultCount, NewSource(3))

	buf := make([]math.Mat4, 0, DefaultCount)
	got := l.ModelMatrices(insts, buf)
	if len(got) != len(insts) {
		t.Fatalf("got %d matrices, want %d", len(got), len(insts))
	}
	for i, inst := range insts {
		if got[i] != l.ModelMatrix(inst) {
			t.Errorf("matrix %d does not match ModelMatrix", i)
		}
	}
	if &got[0] != &buf[:1][0] {
		t.Error("ModelMatrices did not reuse the destination buffer")
	}
}
