package chase

import "chase8/internal/chip"

// RunTick advances the game by exactly one tick. The host scheduler owns the
// clock and calls this once per tick, then ticks the machine timers.
//
// Step order is load-bearing: the erase at the previous position must use
// the pre-toggle bitmap (it cancels last tick's draw, made with the same
// flag value), and the collision signal is the return value of the player
// draw in this same tick; sampling it around any other draw would read an
// unrelated overlap.
func RunTick(st *State, m *chip.Machine) {
	st.PrevPlayer = st.Player

	dx, dy := sampleInput(m)
	st.Player.X += dx
	st.Player.Y += dy

	flagBefore := st.FrameFlag

	// Second application of the XOR composite cancels last tick's draw.
	m.DrawSprite(st.PrevPlayer.X, st.PrevPlayer.Y, frameBitmap(flagBefore, false))

	toggled := false
	if st.TicksRemaining == 0 {
		st.FrameFlag ^= frameToggleMask
		st.TicksRemaining = countdownReload
		toggled = true
	} else {
		st.TicksRemaining--
	}

	if m.DrawSprite(st.Player.X, st.Player.Y, frameBitmap(flagBefore, toggled)) {
		respawn(st, m)
	}
}

// sampleInput reads the four direction keys and returns the tick's movement
// deltas. Each key is tested independently, so holding two orthogonal keys
// moves both axes at once. The deltas are unsigned bytes: 0xFF is -1 under
// wrapping arithmetic.
func sampleInput(m *chip.Machine) (dx, dy uint8) {
	if m.KeyPressed(keyUp) {
		dy--
	}
	if m.KeyPressed(keyDown) {
		dy++
	}
	if m.KeyPressed(keyLeft) {
		dx--
	}
	if m.KeyPressed(keyRight) {
		dx++
	}
	return dx, dy
}

// frameBitmap selects the player bitmap to draw as a pure function of the
// pre-tick flag and this tick's toggle decision. Flag 0x00 selects frame A,
// 0x0F frame B; no other values occur.
func frameBitmap(flagBefore uint8, toggled bool) []byte {
	flag := flagBefore
	if toggled {
		flag ^= frameToggleMask
	}
	if flag == 0 {
		return playerFrameA
	}
	return playerFrameB
}

// respawn runs the collision sequence: erase the target, relocate it with
// two independent random draws over the full byte range, redraw it and
// schedule the tone. No step can fail and no other draw interleaves, so the
// sequence is atomic within the tick.
func respawn(st *State, m *chip.Machine) {
	m.DrawSprite(st.Target.X, st.Target.Y, targetSprite)

	st.Target.X = m.RandomByte(0xFF)
	st.Target.Y = m.RandomByte(0xFF)

	m.DrawSprite(st.Target.X, st.Target.Y, targetSprite)
	m.SetToneDuration(toneTicks)
}
