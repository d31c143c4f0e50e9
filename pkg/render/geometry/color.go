package geometry

import "fmt"

// RGB is a colour with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// PS formats c as PostScript operands, "0.500 0.500 1.000".
func (c RGB) PS() string {
	return fmt.Sprintf("%.3f %.3f %.3f", c.R, c.G, c.B)
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int(v*255 + 0.5)
}

// Colours used by the direction fills and the line work.
var (
	directionColors = [...]RGB{
		{0.5, 0.5, 1.0},
		{0.5, 1.0, 0.5},
		{1.0, 0.5, 0.5},
		{1.0, 0.2, 1.0},
	}

	Black    = RGB{0, 0, 0}
	Between  = RGB{0.2, 0.2, 0.2}
	Chain    = RGB{1.0, 0.5, 0.2}
	ChainBed = RGB{0.8, 0.8, 1.0}
)

// DirectionColor returns the fill colour of an orientation. Orientations
// cycle through four colours, so a shape and its mirror image share a colour
// per rotation step.
func DirectionColor(orientation int) RGB {
	n := len(directionColors)
	return directionColors[((orientation%n)+n)%n]
}
