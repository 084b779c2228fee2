// Package chase implements the chase game: a player-controlled sprite
// pursues a randomly placed target on the machine's XOR display; touching it
// relocates the target and sounds a short tone. All timing units are host
// ticks; the game never drives its own clock.
package chase

import "chase8/internal/chip"

// Gameplay constants. The animation flag only ever holds 0x00 or 0x0F; the
// countdown reload of 15 plus the firing tick itself gives a toggle every
// 16 ticks.
const (
	frameToggleMask uint8 = 0x0F
	countdownReload uint8 = 15
	toneTicks       uint8 = 2
)

// Pad keys the player directions are bound to.
const (
	keyUp    uint8 = 0x5
	keyLeft  uint8 = 0x7
	keyDown  uint8 = 0x8
	keyRight uint8 = 0x9
)

// State is the complete mutable game record, passed by reference into every
// per-tick operation. One writer per tick; nothing else holds game state.
type State struct {
	// Player is the player's position for the current frame.
	Player chip.Point
	// PrevPlayer is the player's position as it was before this tick's
	// movement deltas, captured once per tick before input is sampled.
	// Used solely to erase the prior sprite.
	PrevPlayer chip.Point
	// Target is the target's position, regenerated on every respawn.
	Target chip.Point

	// FrameFlag selects the player bitmap: 0x00 frame A, 0x0F frame B.
	FrameFlag uint8
	// TicksRemaining counts down to the next frame toggle.
	TicksRemaining uint8
}

// NewState initializes the game state on a fresh machine: player centered,
// target at a random position, both sprites drawn. The initial flag and
// countdown are both 0x0F, which front-loads the first toggle.
func NewState(m *chip.Machine) *State {
	st := &State{
		Player:         chip.Point{X: chip.DisplayWidth/2 - 4, Y: chip.DisplayHeight/2 - 3},
		FrameFlag:      frameToggleMask,
		TicksRemaining: countdownReload,
	}
	st.PrevPlayer = st.Player
	st.Target = chip.Point{
		X: m.RandomByte(0xFF),
		Y: m.RandomByte(0xFF),
	}

	m.DrawSprite(st.Target.X, st.Target.Y, targetSprite)
	m.DrawSprite(st.Player.X, st.Player.Y, frameBitmap(st.FrameFlag, false))

	return st
}
