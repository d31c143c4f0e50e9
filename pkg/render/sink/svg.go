package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/polytile/pkg/render/geometry"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// DefaultCellSize is the SVG edge length of one board cell in pixels.
const DefaultCellSize = 20

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cell           float64
	colorDirection bool
	chains         bool
}

// WithCellSize sets the edge length of one cell in pixels. Non-positive
// sizes are ignored.
func WithCellSize(px int) SVGOption {
	return func(r *svgRenderer) {
		if px > 0 {
			r.cell = float64(px)
		}
	}
}

// WithColorDirection fills every cell with the colour of its tile's orientation.
func WithColorDirection() SVGOption { return func(r *svgRenderer) { r.colorDirection = true } }

// WithChains overlays the Korn–Pak chain arrows.
func WithChains() SVGOption { return func(r *svgRenderer) { r.chains = true } }

// RenderSVG renders g as SVG, laid out like the EPS drawing.
func RenderSVG(g *tiling.Grid, opts ...SVGOption) []byte {
	r := svgRenderer{cell: DefaultCellSize}
	for _, opt := range opts {
		opt(&r)
	}

	margin := r.cell / 5
	width := float64(g.Width())*r.cell + 2*margin
	height := float64(g.Height())*r.cell + 2*margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	if r.chains {
		renderArrowMarker(&buf)
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white"/>`+"\n", width, height)
	fmt.Fprintf(&buf, `  <g transform="translate(%.1f %.1f)" stroke-linecap="round">`+"\n", margin, margin)

	if r.colorDirection {
		buf.WriteString(`    <g class="fills" stroke="none">` + "\n")
		for _, c := range geometry.Fills(g) {
			fmt.Fprintf(&buf, `      <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" data-tile="%d"/>`+"\n",
				float64(c.Col-1)*r.cell, float64(c.Row-1)*r.cell, r.cell, r.cell,
				geometry.DirectionColor(c.Orientation).Hex(), c.Tile)
		}
		buf.WriteString("    </g>\n")
	}

	r.renderSegments(&buf, "boundaries", geometry.Between, geometry.Boundaries(g))
	r.renderSegments(&buf, "frame", geometry.Black, geometry.Frame(g))

	if r.chains {
		fmt.Fprintf(&buf, `    <g class="chains" stroke="%s" stroke-width="%.2f" stroke-dasharray="%.1f %.1f" marker-end="url(#arrowhead)">`+"\n",
			geometry.Chain.Hex(), r.cell*0.05, r.cell*0.1, r.cell*0.2)
		for _, a := range geometry.Chains(g) {
			tx, ty := a.Tip()
			fmt.Fprintf(&buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
				float64(a.X)*r.cell, float64(a.Y)*r.cell, float64(tx)*r.cell, float64(ty)*r.cell)
		}
		buf.WriteString("    </g>\n")
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderSegments(buf *bytes.Buffer, class string, color geometry.RGB, segs []geometry.Segment) {
	fmt.Fprintf(buf, `    <g class="%s" stroke="%s" stroke-width="%.2f">`+"\n", class, color.Hex(), r.cell*0.1)
	for _, s := range segs {
		fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
			float64(s.X1)*r.cell, float64(s.Y1)*r.cell, float64(s.X2)*r.cell, float64(s.Y2)*r.cell)
	}
	buf.WriteString("    </g>\n")
}

func renderArrowMarker(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <defs>
    <marker id="arrowhead" viewBox="0 0 8 4" refX="8" refY="2" markerWidth="8" markerHeight="4" orient="auto">
      <path d="M 8 2 L 0 0 L 1 2 L 0 4 Z" fill="%s"/>
    </marker>
  </defs>
`, geometry.Chain.Hex())
}
