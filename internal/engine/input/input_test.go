package input

import "testing"

func TestStatePressRelease(t *testing.T) {
	var s State

	if s.Held(KeyW) {
		t.Error("W should not be held initially")
	}

	s.Press(KeyW)
	s.Press(KeyD)
	if !s.Held(KeyW) || !s.Held(KeyD) {
		t.Error("W and D should be held after Press")
	}
	if s.Held(KeyA) {
		t.Error("A should not be held")
	}

	s.Release(KeyW)
	if s.Held(KeyW) {
		t.Error("W should not be held after Release")
	}
	if !s.Held(KeyD) {
		t.Error("releasing W should not release D")
	}

	s.Clear()
	if s.Held(KeyD) {
		t.Error("D should not be held after Clear")
	}
}

func TestStateIgnoresUnknownKeys(t *testing.T) {
	var s State
	s.Press(KeyUnknown)
	s.Press(Key(99))
	s.Press(Key(-1))

	if s.Held(KeyUnknown) || s.Held(Key(99)) || s.Held(Key(-1)) {
		t.Error("out of range keys should never be held")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyW, "W"},
		{KeyEscape, "Escape"},
		{Key(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}
