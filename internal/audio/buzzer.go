// Package audio implements the chase8 buzzer: a single fixed tone that
// sounds while the machine's sound timer is running.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Buzzer owns the speaker and a pausable tone streamer. The platform layer
// calls SetPlaying after every tick with the current state of the tone gate;
// redundant calls are cheap no-ops.
type Buzzer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
	muted       bool
	playing     bool
}

// NewBuzzer creates a silent buzzer for the given tone frequency. Init must
// be called before it can sound.
func NewBuzzer(toneHz float64) *Buzzer {
	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{
		Streamer: NewToneGenerator(sampleRate, toneHz),
		Paused:   true,
	}
	mixer.Add(ctrl)

	return &Buzzer{
		mixer: mixer,
		ctrl:  ctrl,
	}
}

// Init opens the speaker and starts the (paused) tone stream. An error here
// is not fatal to the game: the caller may keep the buzzer and every later
// call is a silent no-op.
func (b *Buzzer) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// SetPlaying gates the tone on or off. Turning it on while muted stays
// silent.
func (b *Buzzer) SetPlaying(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	if on && b.muted {
		on = false
	}
	if b.playing == on {
		return
	}
	b.playing = on

	speaker.Lock()
	b.ctrl.Paused = !on
	speaker.Unlock()
}

// SetMuted mutes or unmutes the buzzer, silencing any running tone.
func (b *Buzzer) SetMuted(muted bool) {
	b.mu.Lock()
	wasInitialized := b.initialized
	b.muted = muted
	b.mu.Unlock()

	if muted && wasInitialized {
		b.SetPlaying(false)
	}
}

// ToggleMute flips the mute state and returns the new value.
func (b *Buzzer) ToggleMute() bool {
	b.mu.Lock()
	muted := !b.muted
	b.mu.Unlock()

	b.SetMuted(muted)
	return muted
}

// Muted reports the current mute state.
func (b *Buzzer) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// Close silences the buzzer and releases the speaker.
func (b *Buzzer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	b.mixer.Clear()
	speaker.Close()
	b.initialized = false
	b.playing = false
}

// ToneGenerator streams an endless sine tone. The short cosine attack keeps
// the start of the tone from clicking.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator at the given frequency.
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(time.Millisecond * 5))

	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if float64(g.pos) < attack {
			envelope = (1 - math.Cos(math.Pi*float64(g.pos)/attack)) / 2
		}

		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
