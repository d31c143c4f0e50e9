package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/polytile/pkg/render/geometry"
	"github.com/matzehuels/polytile/pkg/tiling"
)

const (
	epsScale       = 10
	epsMargin      = 2
	betweenWidth   = "0.1"
	chainWidth     = "0.05"
	arrowheadWidth = "0.08"
)

const epsPrologue = `/cp {closepath} bind def
/ef {eofill} bind def
/l {lineto} bind def
/m {moveto} bind def
/n {newpath} bind def
/s {stroke} bind def
0.000 0.000 0.000 setrgbcolor
0.050 setlinewidth
1 setlinejoin 1 setlinecap
`

// arrowheadDef draws a filled arrowhead of scale s at the current point,
// rotated to point away from (x0, y0). Usage: s x0 y0 arrowhead.
const arrowheadDef = `/arrowhead {
gsave
currentpoint   % s x0 y0 x1 y1
4 2 roll exch  % s x1 y1 y0 x0
4 -1 roll exch % s y1 y0 x1 x0
sub 3 1 roll   % s x1-x0 y1 y0
sub exch       % s y1-y0 x1-x0
atan rotate
dup scale
-7 2 rlineto 1 -2 rlineto -1 -2 rlineto
closepath fill
grestore
newpath
} def
`

// EPSOption configures EPS rendering via [RenderEPS].
type EPSOption func(*epsRenderer)

type epsRenderer struct {
	colorDirection bool
	chains         bool
}

// WithEPSColorDirection fills every cell with the colour of its tile's
// orientation.
func WithEPSColorDirection() EPSOption { return func(r *epsRenderer) { r.colorDirection = true } }

// WithEPSChains overlays the Korn–Pak chain arrows.
func WithEPSChains() EPSOption { return func(r *epsRenderer) { r.chains = true } }

// RenderEPS renders g as Encapsulated PostScript.
func RenderEPS(g *tiling.Grid, opts ...EPSOption) []byte {
	r := epsRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	h, w := g.Height(), g.Width()
	var buf bytes.Buffer
	buf.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(&buf, "%%%%BoundingBox: 0 0 %d %d\n", epsScale*w+2*epsMargin, epsScale*h+2*epsMargin)
	buf.WriteString(epsPrologue)
	fmt.Fprintf(&buf, "%d %d translate\n%d -%d scale\n", epsMargin, epsScale*h+epsMargin, epsScale, epsScale)

	if r.chains {
		fmt.Fprintf(&buf, "%s setrgbcolor\n0.2 setlinewidth\n", geometry.ChainBed.PS())
	} else {
		fmt.Fprintf(&buf, "%s setrgbcolor\n0.07 setlinewidth\n", geometry.Black.PS())
	}

	if r.colorDirection {
		for _, c := range geometry.Fills(g) {
			x, y := c.Col, c.Row
			fmt.Fprintf(&buf, "n %d %d m %d %d l %d %d l %d %d l cp gsave %s setrgbcolor ef grestore\n",
				x-1, y-1, x, y-1, x, y, x-1, y, geometry.DirectionColor(c.Orientation).PS())
		}
	}

	fmt.Fprintf(&buf, "%s setrgbcolor\n%s setlinewidth\n", geometry.Between.PS(), betweenWidth)
	writeSegments(&buf, geometry.Boundaries(g))

	fmt.Fprintf(&buf, "%s setrgbcolor\n%s setlinewidth\n", geometry.Black.PS(), betweenWidth)
	writeSegments(&buf, geometry.Frame(g))

	if r.chains {
		fmt.Fprintf(&buf, "%s setlinewidth\n%s setrgbcolor\n", chainWidth, geometry.Chain.PS())
		buf.WriteString("1 setlinecap [.1 .2] 0 setdash\n")
		buf.WriteString(arrowheadDef)
		for _, a := range geometry.Chains(g) {
			tx, ty := a.Tip()
			fmt.Fprintf(&buf, "n %d %d m %d %d l s\n", a.X, a.Y, tx, ty)
			fmt.Fprintf(&buf, "n %d %d m %s %d %d arrowhead\n", tx, ty, arrowheadWidth, a.X, a.Y)
		}
	}

	buf.WriteString("showpage\n")
	return buf.Bytes()
}

func writeSegments(buf *bytes.Buffer, segs []geometry.Segment) {
	for _, s := range segs {
		fmt.Fprintf(buf, "n %d %d m %d %d l s\n", s.X1, s.Y1, s.X2, s.Y2)
	}
}
