// Package chip emulates the fixed primitive surface of the 8-bit machine the
// game runs on: a 64x32 one-bit XOR display, a 16-key pad, two countdown
// timers and a masked random byte source. The game core talks only to this
// package; everything above it (terminal rendering, audio output, key
// scanning) lives in the platform layer.
package chip

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Point is a position in the machine's 8-bit coordinate space. Coordinates
// wrap with unsigned arithmetic; the display applies its own per-pixel
// modulo when compositing.
type Point struct {
	X, Y uint8
}

// Display is the machine's one-bit framebuffer. Sprites are composited with
// XOR, so drawing the same sprite twice at the same position is a perfect
// visual no-op.
type Display struct {
	pixels []bool
}

// NewDisplay creates a cleared framebuffer.
func NewDisplay() *Display {
	return &Display{
		pixels: make([]bool, DisplayWidth*DisplayHeight),
	}
}

// DrawSprite XOR-composites an 8-pixel-wide sprite onto the framebuffer at
// (x, y), one byte per row with the most significant bit leftmost. Both axes
// wrap per pixel. It returns true when any destination pixel that was set
// got cleared by the composite: the collision signal, returned directly to
// the caller rather than parked in a shared flag.
func (d *Display) DrawSprite(x, y uint8, sprite []byte) bool {
	collided := false

	for row, bits := range sprite {
		py := (int(y) + row) % DisplayHeight
		for col := range 8 {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % DisplayWidth
			idx := py*DisplayWidth + px

			if d.pixels[idx] {
				collided = true
			}
			d.pixels[idx] = !d.pixels[idx]
		}
	}

	return collided
}

// Pixel reports whether the pixel at (x, y) is lit. Coordinates are taken
// modulo the display size.
func (d *Display) Pixel(x, y int) bool {
	px := ((x % DisplayWidth) + DisplayWidth) % DisplayWidth
	py := ((y % DisplayHeight) + DisplayHeight) % DisplayHeight
	return d.pixels[py*DisplayWidth+px]
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	for i := range d.pixels {
		d.pixels[i] = false
	}
}

// LitCount returns the number of lit pixels. Useful for tests and for the
// erase/redraw round-trip law.
func (d *Display) LitCount() int {
	n := 0
	for _, p := range d.pixels {
		if p {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the framebuffer as a flat row-major slice.
func (d *Display) Snapshot() []bool {
	out := make([]bool, len(d.pixels))
	copy(out, d.pixels)
	return out
}
