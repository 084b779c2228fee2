package chip

// Timers are the machine's two autonomous countdown registers. The host
// scheduler calls Tick once per tick; each nonzero register decrements by
// one and holds at zero until something writes it again.
//
// The sound register doubles as the tone gate: audio plays while it is
// nonzero.
type Timers struct {
	delay uint8
	sound uint8
}

// NewTimers creates timers with both registers at zero.
func NewTimers() *Timers {
	return &Timers{}
}

// Tick applies one saturating decrement to each register.
func (t *Timers) Tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

// Delay reads the delay register.
func (t *Timers) Delay() uint8 { return t.delay }

// SetDelay writes the delay register.
func (t *Timers) SetDelay(v uint8) { t.delay = v }

// Sound reads the sound register.
func (t *Timers) Sound() uint8 { return t.sound }

// SetSound writes the sound register.
func (t *Timers) SetSound(v uint8) { t.sound = v }
