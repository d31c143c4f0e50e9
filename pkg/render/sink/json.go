package sink

import (
	"encoding/json"

	"github.com/matzehuels/polytile/pkg/tiling"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	shape   string
	symbols string
	tag     int
}

// WithJSONShape records the shape name.
func WithJSONShape(name string) JSONOption { return func(r *jsonRenderer) { r.shape = name } }

// WithJSONSymbols records the tiling string the grid was built from.
func WithJSONSymbols(s string) JSONOption { return func(r *jsonRenderer) { r.symbols = s } }

// WithJSONTag records the problem tag.
func WithJSONTag(tag int) JSONOption { return func(r *jsonRenderer) { r.tag = tag } }

type jsonOutput struct {
	Height     int             `json:"height"`
	Width      int             `json:"width"`
	Tag        int             `json:"tag,omitempty"`
	Shape      string          `json:"shape,omitempty"`
	Symbols    string          `json:"symbols,omitempty"`
	Stride     int             `json:"stride"`
	Tiles      int             `json:"tiles"`
	Complete   bool            `json:"complete"`
	Ignored    int             `json:"ignored,omitempty"`
	Rows       [][]int         `json:"rows"`
	Placements []jsonPlacement `json:"placements,omitempty"`
}

type jsonPlacement struct {
	Index       int    `json:"index"`
	Symbol      string `json:"symbol"`
	Orientation int    `json:"orientation"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Tile        int    `json:"tile"`
}

// RenderJSON exports the tile ids and placement records of g. Empty cells
// are -1.
func RenderJSON(g *tiling.Grid, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Height:   g.Height(),
		Width:    g.Width(),
		Tag:      r.tag,
		Shape:    r.shape,
		Symbols:  r.symbols,
		Stride:   g.Stride(),
		Tiles:    g.Count(),
		Complete: g.Complete(),
		Ignored:  g.Ignored(),
		Rows:     g.Rows(),
	}
	for _, p := range g.Placements() {
		out.Placements = append(out.Placements, jsonPlacement{
			Index:       p.Index,
			Symbol:      string(p.Symbol),
			Orientation: p.Orientation,
			Row:         p.Row,
			Col:         p.Col,
			Tile:        int(p.Tile),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
