package adjacency

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/render/geometry"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// Options configures adjacency graph rendering.
type Options struct {
	// Detailed adds the tile id and cell count to node labels.
	// When false, only the placement number and orientation are shown.
	Detailed bool
}

// ToDOT converts the adjacency graph of g to Graphviz DOT format. The result
// can be rendered with [RenderSVG].
func ToDOT(g *tiling.Grid, opts Options) string {
	gr := Build(g)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14, fixedsize=true, width=0.6];\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("\n")

	for _, n := range gr.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(n.Tile), strings.Join(fmtAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range gr.Edges {
		fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(e.From), nodeID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id tiling.TileID) string {
	return "t" + strconv.Itoa(int(id))
}

func fmtAttrs(n Node, detailed bool) []string {
	label := fmt.Sprintf("%d\no%d", n.Sequence, n.Orientation)
	if detailed {
		label += fmt.Sprintf("\nid %d\n%d cells", n.Tile, n.Cells)
	}
	return []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", geometry.DirectionColor(n.Orientation).Hex()),
	}
}

// RenderSVG renders a DOT graph to SVG using the Graphviz neato layout.
// Returns the SVG bytes ready for display or further conversion with
// render.ToPDF or render.ToPNG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one
// whose width and height match the view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
