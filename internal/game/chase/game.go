package chase

import (
	"chase8/internal/chip"
	"chase8/internal/core"
	"chase8/internal/registry"
)

// Game adapts the chase core to the platform's game interface. It owns the
// machine and the state record; Step maps the tick's input frame onto the
// pad, runs one game tick and then ticks the machine timers.
type Game struct {
	machine *chip.Machine
	state   *State
	paused  bool
	seed    int64
}

// New creates an uninitialized game; Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "chase" }

// Title returns the display name.
func (g *Game) Title() string { return "Chase" }

// Reset builds a fresh machine and game state from the config seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.machine = chip.New(g.seed)
	g.state = NewState(g.machine)
	g.paused = false
}

// Step advances the simulation by one tick. The loop is infinite: there is
// no game over, no score and no exit condition. Termination is the host's
// business.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	kp := g.machine.Keypad
	kp.SetPressed(keyUp, in.Has(core.ActionUp))
	kp.SetPressed(keyDown, in.Has(core.ActionDown))
	kp.SetPressed(keyLeft, in.Has(core.ActionLeft))
	kp.SetPressed(keyRight, in.Has(core.ActionRight))

	RunTick(g.state, g.machine)
	g.machine.TickTimers()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// ToneActive reports whether the machine's sound timer is running. The
// platform polls this after each tick to gate the buzzer.
func (g *Game) ToneActive() bool {
	return g.machine != nil && g.machine.ToneActive()
}

// Render layout constants. Two display rows share one terminal cell via
// half-block runes, so the 64x32 framebuffer needs a 64x16 cell area plus
// the border and the HUD.
const (
	hudHeight = 2
	requiredW = chip.DisplayWidth + 2
	requiredH = chip.DisplayHeight/2 + 2 + hudHeight
)

// Render draws the HUD and the framebuffer into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if dst.Width() < requiredW || dst.Height() < requiredH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	boxX := (dst.Width() - requiredW) / 2
	boxY := hudHeight
	dst.DrawBox(boxX, boxY, requiredW, chip.DisplayHeight/2+2)

	g.renderDisplay(dst, boxX+1, boxY+1)

	if g.paused {
		g.renderPauseOverlay(dst)
	}
}

// renderHUD draws the top status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, "chase8 - catch the ring")
	hint := "wasd/arrows move  p pause  q quit"
	dst.DrawText(dst.Width()-len(hint)-1, 0, hint)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderDisplay converts the one-bit framebuffer to half-block runes, two
// pixel rows per cell row.
func (g *Game) renderDisplay(dst *core.Screen, offX, offY int) {
	d := g.machine.Display
	for cy := range chip.DisplayHeight / 2 {
		for cx := range chip.DisplayWidth {
			top := d.Pixel(cx, cy*2)
			bottom := d.Pixel(cx, cy*2+1)

			var r rune
			switch {
			case top && bottom:
				r = '█'
			case top:
				r = '▀'
			case bottom:
				r = '▄'
			default:
				r = ' '
			}
			dst.Set(offX+cx, offY+cy, r)
		}
	}
}

// renderPauseOverlay draws a centered pause box over the display.
func (g *Game) renderPauseOverlay(dst *core.Screen) {
	line1 := "Paused"
	line2 := "p resume / r restart"

	boxW := len(line2) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
