package colorhash

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// An HSL is a color in hue/saturation/lightness space.
type HSL struct {
	H float64 // degrees, [0, 360)
	S float64 // percent, [0, 100]
	L float64 // percent, [0, 100]
}

// RGB converts c to RGB. The conversion is the standard HSL→RGB
// transform, delegated to go-colorful.
func (c HSL) RGB() RGB {
	r, g, b := colorful.Hsl(c.H, c.S/100, c.L/100).RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hex formats c as six lowercase hex digits, without a leading "#".
func (c HSL) Hex() string {
	return c.RGB().Hex()
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}

// An RGB is a color with 8-bit red, green, and blue channels.
type RGB struct {
	R, G, B uint8
}

// Hex formats c as six lowercase hex digits, without a leading "#".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
