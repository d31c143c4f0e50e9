package sink

import (
	"github.com/matzehuels/polytile/pkg/render/art"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// RenderText renders the ASCII picture followed by a newline.
func RenderText(g *tiling.Grid) []byte {
	return []byte(art.Render(g) + "\n")
}
