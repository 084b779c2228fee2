package chip

// KeyCount is the number of keys on the machine's hex pad.
const KeyCount = 16

// Keypad holds the instantaneous press state of the 16-key pad. Reads are
// non-blocking point samples: there is no queueing and no debouncing, a key
// held across ticks is observed fresh on every sample.
type Keypad struct {
	pressed [KeyCount]bool
}

// NewKeypad creates a keypad with all keys released.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// SetPressed records the press state for a key. Key ids outside the pad are
// ignored.
func (k *Keypad) SetPressed(key uint8, down bool) {
	if key >= KeyCount {
		return
	}
	k.pressed[key] = down
}

// Pressed samples the current press state of a key. Unknown keys read as
// released.
func (k *Keypad) Pressed(key uint8) bool {
	if key >= KeyCount {
		return false
	}
	return k.pressed[key]
}

// ReleaseAll clears the press state of every key.
func (k *Keypad) ReleaseAll() {
	k.pressed = [KeyCount]bool{}
}
