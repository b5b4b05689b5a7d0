package colors

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a color with channels nominally in [0, 1]. Values outside that range
// are kept as-is; only conversion to a device color clamps them.
type RGB struct {
	R, G, B float32
}

var (
	// Purple is the fixed color used when no table is loaded.
	Purple = RGB{R: 0.5, G: 0, B: 0.5}
	// Periwinkle is the clear color before any trigger.
	Periwinkle = RGB{R: 0.5, G: 0.5, B: 0.9}
)

func (c RGB) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}

// NRGBA converts to an opaque 8-bit color for the renderer.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 0xff}
}

func channel8(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}
