// Package input defines window-system neutral key codes and held-key state.
package input

// Key identifies a keyboard key the application reacts to.
type Key int

// Keys used by the camera controls.
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape

	keyCount
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeyEscape:  "Escape",
}

// String returns a readable key name.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// State tracks which keys are currently held down.
// It is fed from key-down/key-up events by the window backend.
type State struct {
	held [keyCount]bool
}

// Press marks k as held.
func (s *State) Press(k Key) {
	if k > KeyUnknown && k < keyCount {
		s.held[k] = true
	}
}

// Release marks k as released.
func (s *State) Release(k Key) {
	if k > KeyUnknown && k < keyCount {
		s.held[k] = false
	}
}

// Held reports whether k is held down.
func (s *State) Held(k Key) bool {
	if k <= KeyUnknown || k >= keyCount {
		return false
	}
	return s.held[k]
}

// Clear releases every key, e.g. when the window loses focus.
func (s *State) Clear() {
	s.held = [keyCount]bool{}
}
