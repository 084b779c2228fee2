package chase

import (
	"testing"

	"chase8/internal/chip"
)

// newFixture builds a machine and a hand-placed game state so tests can
// engineer exact positions. Sprites are pre-drawn the same way NewState
// draws them.
func newFixture(seed int64, player, target chip.Point) (*State, *chip.Machine) {
	m := chip.New(seed)
	st := &State{
		Player:         player,
		PrevPlayer:     player,
		Target:         target,
		FrameFlag:      frameToggleMask,
		TicksRemaining: countdownReload,
	}
	m.DrawSprite(target.X, target.Y, targetSprite)
	m.DrawSprite(player.X, player.Y, frameBitmap(st.FrameFlag, false))
	return st, m
}

// spriteAt reports whether the display region at p matches the sprite
// exactly, lit and unlit pixels both.
func spriteAt(d *chip.Display, p chip.Point, sprite []byte) bool {
	for row, bits := range sprite {
		for col := range 8 {
			want := bits&(0x80>>col) != 0
			if d.Pixel(int(p.X)+col, int(p.Y)+row) != want {
				return false
			}
		}
	}
	return true
}

func TestPreviousPositionCapture(t *testing.T) {
	st, m := newFixture(1, chip.Point{X: 20, Y: 10}, chip.Point{X: 50, Y: 25})

	m.Keypad.SetPressed(keyRight, true)
	RunTick(st, m)

	if st.PrevPlayer != (chip.Point{X: 20, Y: 10}) {
		t.Errorf("PrevPlayer = %+v, expected the pre-move position", st.PrevPlayer)
	}
	if st.Player != (chip.Point{X: 21, Y: 10}) {
		t.Errorf("Player = %+v, expected (21, 10)", st.Player)
	}
}

func TestNoInputNoMove(t *testing.T) {
	st, m := newFixture(1, chip.Point{X: 20, Y: 10}, chip.Point{X: 50, Y: 25})
	before := m.Display.Snapshot()

	RunTick(st, m)

	if st.Player != (chip.Point{X: 20, Y: 10}) {
		t.Errorf("Player = %+v, expected no movement", st.Player)
	}

	// Erase/redraw of an unmoved sprite with an untoggled frame is a
	// visual no-op.
	after := m.Display.Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("display changed on a tick with no input and no toggle")
		}
	}
}

func TestMovementDeltas(t *testing.T) {
	tests := []struct {
		name     string
		keys     []uint8
		expected chip.Point
	}{
		{"up", []uint8{keyUp}, chip.Point{X: 20, Y: 9}},
		{"down", []uint8{keyDown}, chip.Point{X: 20, Y: 11}},
		{"left", []uint8{keyLeft}, chip.Point{X: 19, Y: 10}},
		{"right", []uint8{keyRight}, chip.Point{X: 21, Y: 10}},
		{"diagonal up-left", []uint8{keyUp, keyLeft}, chip.Point{X: 19, Y: 9}},
		{"diagonal down-right", []uint8{keyDown, keyRight}, chip.Point{X: 21, Y: 11}},
		{"opposing keys cancel", []uint8{keyLeft, keyRight}, chip.Point{X: 20, Y: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, m := newFixture(1, chip.Point{X: 20, Y: 10}, chip.Point{X: 50, Y: 25})
			for _, k := range tc.keys {
				m.Keypad.SetPressed(k, true)
			}

			RunTick(st, m)

			if st.Player != tc.expected {
				t.Errorf("Player = %+v, expected %+v", st.Player, tc.expected)
			}
		})
	}
}

func TestScenarioDiagonal(t *testing.T) {
	// Player at (5,5), up and left held in the same tick: new position
	// (4,4), previous position recorded as (5,5).
	st, m := newFixture(1, chip.Point{X: 5, Y: 5}, chip.Point{X: 40, Y: 20})

	m.Keypad.SetPressed(keyUp, true)
	m.Keypad.SetPressed(keyLeft, true)
	RunTick(st, m)

	if st.Player != (chip.Point{X: 4, Y: 4}) {
		t.Errorf("Player = %+v, expected (4, 4)", st.Player)
	}
	if st.PrevPlayer != (chip.Point{X: 5, Y: 5}) {
		t.Errorf("PrevPlayer = %+v, expected (5, 5)", st.PrevPlayer)
	}
}

func TestCoordinateWraparound(t *testing.T) {
	st, m := newFixture(1, chip.Point{X: 0, Y: 0}, chip.Point{X: 40, Y: 20})

	m.Keypad.SetPressed(keyUp, true)
	m.Keypad.SetPressed(keyLeft, true)
	RunTick(st, m)

	// No clamping anywhere: coordinates wrap with 8-bit arithmetic and
	// the display applies its own modulo when drawing.
	if st.Player != (chip.Point{X: 255, Y: 255}) {
		t.Errorf("Player = %+v, expected (255, 255)", st.Player)
	}
}

func TestToggleSchedule(t *testing.T) {
	st, m := newFixture(1, chip.Point{X: 20, Y: 10}, chip.Point{X: 50, Y: 25})

	var toggleTicks []int
	prevFlag := st.FrameFlag
	for tick := 1; tick <= 64; tick++ {
		RunTick(st, m)
		if st.FrameFlag != prevFlag {
			toggleTicks = append(toggleTicks, tick)
			prevFlag = st.FrameFlag
		}
	}

	want := []int{16, 32, 48, 64}
	if len(toggleTicks) != len(want) {
		t.Fatalf("toggles fired on ticks %v, expected %v", toggleTicks, want)
	}
	for i := range want {
		if toggleTicks[i] != want[i] {
			t.Fatalf("toggles fired on ticks %v, expected %v", toggleTicks, want)
		}
	}
}

func TestToggleIndependentOfMovement(t *testing.T) {
	// The toggle schedule must not shift when the player moves or keys
	// change between ticks.
	st, m := newFixture(1, chip.Point{X: 20, Y: 10}, chip.Point{X: 50, Y: 25})

	for tick := 1; tick <= 32; tick++ {
		m.Keypad.SetPressed(keyRight, tick%3 == 0)
		m.Keypad.SetPressed(keyDown, tick%5 == 0)
		RunTick(st, m)

		switch tick {
		case 15:
			if st.FrameFlag != frameToggleMask {
				t.Fatal("flag toggled before tick 16")
			}
		case 16:
			if st.FrameFlag != 0 {
				t.Fatal("flag did not toggle on tick 16")
			}
		case 31:
			if st.FrameFlag != 0 {
				t.Fatal("flag toggled before tick 32")
			}
		case 32:
			if st.FrameFlag != frameToggleMask {
				t.Fatal("flag did not toggle on tick 32")
			}
		}
	}
}

func TestScenarioFirstToggle(t *testing.T) {
	// FrameFlag starts at 0x0F with countdown 15. After 15 ticks nothing
	// has toggled; on tick 16 the flag becomes 0x0F XOR 0x0F = 0, the
	// countdown resets to 15 and the sprite drawn that tick is frame A.
	st, m := newFixture(1, chip.Point{X: 20, Y: 10}, chip.Point{X: 50, Y: 25})

	for range 15 {
		RunTick(st, m)
	}
	if st.FrameFlag != frameToggleMask {
		t.Fatalf("FrameFlag = %#x after 15 ticks, expected %#x", st.FrameFlag, frameToggleMask)
	}

	RunTick(st, m)

	if st.FrameFlag != 0 {
		t.Errorf("FrameFlag = %#x on tick 16, expected 0", st.FrameFlag)
	}
	if st.TicksRemaining != countdownReload {
		t.Errorf("TicksRemaining = %d on tick 16, expected %d", st.TicksRemaining, countdownReload)
	}
	if !spriteAt(m.Display, st.Player, playerFrameA) {
		t.Error("sprite drawn on the toggle tick should be frame A")
	}
}

func TestFrameBitmapSelection(t *testing.T) {
	tests := []struct {
		name       string
		flagBefore uint8
		toggled    bool
		expected   []byte
	}{
		{"flag zero, no toggle", 0x00, false, playerFrameA},
		{"flag set, no toggle", 0x0F, false, playerFrameB},
		{"flag zero, toggled", 0x00, true, playerFrameB},
		{"flag set, toggled", 0x0F, true, playerFrameA},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := frameBitmap(tc.flagBefore, tc.toggled)
			if &got[0] != &tc.expected[0] {
				t.Errorf("frameBitmap(%#x, %v) selected the wrong bitmap", tc.flagBefore, tc.toggled)
			}
		})
	}
}

func TestScenarioCollisionRespawn(t *testing.T) {
	// Player and target engineered to coincide at (10,10). The player's
	// draw this tick must detect the overlap; within the same tick the
	// target is erased, relocated and redrawn, and a tone of duration 2
	// is scheduled.
	st, m := newFixture(99, chip.Point{X: 10, Y: 10}, chip.Point{X: 10, Y: 10})

	RunTick(st, m)

	if m.Timers.Sound() != toneTicks {
		t.Errorf("sound timer = %d, expected %d", m.Timers.Sound(), toneTicks)
	}

	// The display must now be exactly: player at (10,10) plus target at
	// its new position. XOR compositing is order-independent, so a fresh
	// replay of those two draws must match pixel for pixel.
	ref := chip.NewDisplay()
	ref.DrawSprite(st.Player.X, st.Player.Y, frameBitmap(st.FrameFlag, false))
	ref.DrawSprite(st.Target.X, st.Target.Y, targetSprite)

	got := m.Display.Snapshot()
	want := ref.Snapshot()
	for i := range got {
		if got[i] != want[i] {
			t.Fatal("display after respawn does not match erase-relocate-redraw")
		}
	}
}

func TestCollisionSignalNotReconsumed(t *testing.T) {
	st, m := newFixture(7, chip.Point{X: 10, Y: 10}, chip.Point{X: 10, Y: 10})

	RunTick(st, m)
	if m.Timers.Sound() != toneTicks {
		t.Fatalf("collision tick should schedule a tone, sound = %d", m.Timers.Sound())
	}

	// Move the target well away so the next draws cannot overlap, and
	// drain the tone.
	m.DrawSprite(st.Target.X, st.Target.Y, targetSprite)
	st.Target = chip.Point{X: 48, Y: 24}
	m.DrawSprite(st.Target.X, st.Target.Y, targetSprite)
	m.TickTimers()
	m.TickTimers()

	RunTick(st, m)

	if m.Timers.Sound() != 0 {
		t.Errorf("sound timer = %d after a collision-free tick, expected 0", m.Timers.Sound())
	}
	if st.Target != (chip.Point{X: 48, Y: 24}) {
		t.Errorf("target moved without a collision: %+v", st.Target)
	}
}

func TestRespawnCoordinatesUseFullRange(t *testing.T) {
	// Respawn draws one byte per axis over [0, 255] with no rejection:
	// positions may sit off the visible field or on the player. Force
	// many respawns and check the sampled space is wider than the
	// display, which a clamped or masked implementation would fail.
	st, m := newFixture(3, chip.Point{X: 10, Y: 10}, chip.Point{X: 10, Y: 10})

	sawWideX, sawWideY := false, false
	for range 64 {
		respawn(st, m)
		if st.Target.X >= chip.DisplayWidth {
			sawWideX = true
		}
		if st.Target.Y >= chip.DisplayHeight {
			sawWideY = true
		}
	}

	if !sawWideX || !sawWideY {
		t.Error("64 respawns never left the visible field; expected full 8-bit range")
	}
}

func TestTickDeterminism(t *testing.T) {
	run := func() ([]bool, chip.Point) {
		st, m := newFixture(1234, chip.Point{X: 20, Y: 10}, chip.Point{X: 22, Y: 10})
		for tick := range 200 {
			m.Keypad.SetPressed(keyRight, tick%2 == 0)
			m.Keypad.SetPressed(keyDown, tick%7 == 0)
			RunTick(st, m)
			m.TickTimers()
		}
		return m.Display.Snapshot(), st.Target
	}

	snap1, target1 := run()
	snap2, target2 := run()

	if target1 != target2 {
		t.Errorf("same seed and inputs produced targets %+v and %+v", target1, target2)
	}
	for i := range snap1 {
		if snap1[i] != snap2[i] {
			t.Fatal("same seed and inputs produced different displays")
		}
	}
}
