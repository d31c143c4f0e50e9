// Package art draws a tiling as ASCII art.
//
// Every board cell is two characters wide. "+--+" runs mark horizontal
// tile boundaries and "|" marks vertical ones:
//
//	+--+--+--+--+
//	|        |  |
//	+--+  +--+  +
//	|  |  |     |
//	...
package art

import (
	"strings"

	"github.com/matzehuels/polytile/pkg/tiling"
)

// Render returns the picture of g without a trailing newline.
func Render(g *tiling.Grid) string {
	h, w := g.Height(), g.Width()
	var b strings.Builder
	b.Grow((h*2 + 1) * (w*3 + 2))

	for i := 1; i <= h; i++ {
		b.WriteByte('+')
		for j := 1; j <= w; j++ {
			if i == 1 || g.At(i, j) != g.At(i-1, j) {
				b.WriteString("--")
			} else {
				b.WriteString("  ")
			}
			b.WriteByte('+')
		}
		b.WriteByte('\n')

		b.WriteString("|  ")
		for j := 1; j < w; j++ {
			if g.At(i, j) != g.At(i, j+1) {
				b.WriteString("|  ")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("|\n")
	}

	b.WriteByte('+')
	for j := 1; j <= w; j++ {
		b.WriteString("--+")
	}
	return b.String()
}
