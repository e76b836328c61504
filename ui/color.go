package ui

// Color is a 32-bit RGBA color, red in the high byte. The packed form reads
// like an HTML color with an alpha suffix, ie. opaque red = 0xFF0000FF.
type Color uint32

// R returns the red channel, 0 to 255.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel, 0 to 255.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel, 0 to 255.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel, 0 to 255.
func (c Color) A() uint8 { return uint8(c) }

// Floats returns all four channels as values between 0.0 and 1.0, the form
// the render backend consumes.
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R()) / 255.0,
		float32(c.G()) / 255.0,
		float32(c.B()) / 255.0,
		float32(c.A()) / 255.0
}
