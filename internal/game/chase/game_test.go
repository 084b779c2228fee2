package chase

import (
	"strings"
	"testing"

	"chase8/internal/chip"
	"chase8/internal/core"
	"chase8/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("chase") {
		t.Fatal("chase should register itself")
	}

	g, err := registry.Create("chase")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "chase" {
		t.Errorf("ID() = %q", g.ID())
	}
}

func TestStepMapsDirectionActions(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	start := g.state.Player

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	g.Step(in)

	if g.state.Player.X != start.X+1 || g.state.Player.Y != start.Y+1 {
		t.Errorf("Player = %+v, expected one step down-right from %+v", g.state.Player, start)
	}
}

func TestPauseHaltsSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	pos := g.state.Player
	ticks := g.state.TicksRemaining

	move := core.NewInputFrame()
	move.Set(core.ActionLeft)
	g.Step(move)

	if g.state.Player != pos || g.state.TicksRemaining != ticks {
		t.Error("paused game should not advance")
	}

	// Unpause and the same input moves the player.
	unpause := core.NewInputFrame()
	unpause.Set(core.ActionPause)
	g.Step(unpause)

	g.Step(move)
	if g.state.Player.X != pos.X-1 {
		t.Error("unpaused game should advance again")
	}
}

func TestStepTicksSoundTimer(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Park the target away from the player so no collision reschedules
	// the tone mid-test.
	g.machine.DrawSprite(g.state.Target.X, g.state.Target.Y, targetSprite)
	g.state.Target = chip.Point{X: 48, Y: 24}
	g.machine.DrawSprite(g.state.Target.X, g.state.Target.Y, targetSprite)

	// A scheduled tone drains by one per stepped tick and the tone gate
	// follows the register.
	g.machine.SetToneDuration(2)
	if !g.ToneActive() {
		t.Fatal("tone should be active after scheduling")
	}

	g.Step(core.NewInputFrame())
	if !g.ToneActive() {
		t.Error("tone should still be active after one tick")
	}
	g.Step(core.NewInputFrame())
	if g.ToneActive() {
		t.Error("tone should be silent after two ticks")
	}
}

func TestRenderDrawsHUDAndField(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.Row(0), "chase8") {
		t.Error("HUD should name the game")
	}
	if !strings.Contains(s.String(), "┌") {
		t.Error("field border should be drawn")
	}

	// The player sprite lights pixels, so the field contains block runes.
	if !strings.ContainsAny(s.String(), "█▀▄") {
		t.Error("field should contain lit pixels")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	s := core.NewScreen(40, 10)
	g.Render(s)

	if !strings.Contains(s.String(), "Window too small") {
		t.Error("small screens should show the resize hint")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.String(), "Paused") {
		t.Error("paused game should draw the pause overlay")
	}
}

func TestResetRestoresFreshState(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for range 10 {
		g.Step(in)
	}

	g.Reset(testConfig())

	g2 := New()
	g2.Reset(testConfig())

	if g.state.Player != g2.state.Player || g.state.Target != g2.state.Target {
		t.Error("reset with the same seed should reproduce the initial state")
	}
}
