package chip

// Machine bundles the primitive surface the game core consumes: display,
// keypad, timers and random source. It has no clock of its own; the host
// scheduler drives it by invoking the game tick and then TickTimers.
type Machine struct {
	Display *Display
	Keypad  *Keypad
	Timers  *Timers
	rng     *RNG
}

// New creates a machine with a cleared display, released keys, zeroed
// timers and a random source derived from seed.
func New(seed int64) *Machine {
	return &Machine{
		Display: NewDisplay(),
		Keypad:  NewKeypad(),
		Timers:  NewTimers(),
		rng:     NewRNG(seed),
	}
}

// DrawSprite composites a sprite onto the display and returns the collision
// signal for this draw call.
func (m *Machine) DrawSprite(x, y uint8, sprite []byte) bool {
	return m.Display.DrawSprite(x, y, sprite)
}

// KeyPressed samples the current press state of a pad key.
func (m *Machine) KeyPressed(key uint8) bool {
	return m.Keypad.Pressed(key)
}

// RandomByte returns a uniformly distributed value in [0, mask].
func (m *Machine) RandomByte(mask uint8) uint8 {
	return m.rng.RandomByte(mask)
}

// SetToneDuration schedules the buzzer for the given number of ticks by
// writing the sound register. Non-blocking; the platform layer plays the
// tone while the register is nonzero.
func (m *Machine) SetToneDuration(ticks uint8) {
	m.Timers.SetSound(ticks)
}

// ToneActive reports whether the buzzer should currently be sounding.
func (m *Machine) ToneActive() bool {
	return m.Timers.Sound() > 0
}

// TickTimers applies the per-tick decrement to both countdown registers.
// Called by the host scheduler exactly once per tick, after the game tick.
func (m *Machine) TickTimers() {
	m.Timers.Tick()
}

// Reset clears the display, releases all keys and zeroes the timers. The
// random source is left running so a restarted game takes a fresh path.
func (m *Machine) Reset() {
	m.Display.Clear()
	m.Keypad.ReleaseAll()
	m.Timers.SetDelay(0)
	m.Timers.SetSound(0)
}
