package tiling

import (
	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/polyomino"
)

// Option configures an Engine.
type Option func(*Engine)

// WithIgnoreOverflow makes symbols that arrive after the board is full a
// silent no-op instead of an ErrCodeOverfullInput failure.
func WithIgnoreOverflow() Option {
	return func(e *Engine) { e.ignoreOverflow = true }
}

// Engine places tiles for one run. It is not safe for concurrent use.
type Engine struct {
	family         *polyomino.Family
	shapes         []polyomino.Shape
	enc            Encoding
	board          *board
	next           int
	ignoreOverflow bool
}

// NewEngine creates an engine with an empty height×width board.
func NewEngine(f *polyomino.Family, enc Encoding, height, width int, opts ...Option) (*Engine, error) {
	if f == nil {
		return nil, errs.New(errs.ErrCodeInvalidShape, "orientation family is required")
	}
	if height <= 0 || width <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "board dimensions must be positive, got %dx%d", height, width)
	}
	if err := enc.Validate(f.Len()); err != nil {
		return nil, err
	}

	shapes := make([]polyomino.Shape, f.Len())
	for i := range shapes {
		shapes[i] = f.At(i)
	}

	e := &Engine{
		family: f,
		shapes: shapes,
		enc:    enc,
		board:  newBoard(height, width, enc.Modulus),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Family returns the orientation family the engine places.
func (e *Engine) Family() *polyomino.Family { return e.family }

// Encoding returns the symbol encoding.
func (e *Engine) Encoding() Encoding { return e.enc }

// Consumed returns how many symbols have been accepted so far.
func (e *Engine) Consumed() int { return e.next }

// Snapshot returns a read-only copy of the current board.
func (e *Engine) Snapshot() *Grid { return e.board.snapshot() }

// Step places a single symbol. It returns nil and no error when the board
// is full and overflow is ignored. A failed step leaves the board untouched
// and does not consume the symbol.
func (e *Engine) Step(symbol byte) (*Placement, error) {
	b := e.board
	fail := func(code errs.Code, pe *PlacementError) error {
		pe.Index, pe.Symbol, pe.Height, pe.Width = e.next, symbol, b.height, b.width
		return errs.Wrap(code, pe, "illegal tiling string for w=%d and h=%d", b.width, b.height)
	}

	orientation, err := e.enc.Orientation(symbol)
	if err != nil {
		return nil, fail(errs.ErrCodeInvalidSymbol, &PlacementError{Orientation: -1, Reason: ReasonInvalidSymbol})
	}

	row, col, ok := b.anchor()
	if !ok {
		if e.ignoreOverflow {
			b.ignored++
			e.next++
			return nil, nil
		}
		return nil, fail(errs.ErrCodeOverfullInput, &PlacementError{Orientation: -1, Reason: ReasonBoardFull})
	}

	s := e.shapes[orientation]
	if reason, ok := b.fits(s, row, col); !ok {
		return nil, fail(errs.ErrCodeIllegalPlacement, &PlacementError{
			Orientation: orientation,
			Row:         row,
			Col:         col,
			Reason:      reason,
		})
	}

	p := Placement{
		Index:       e.next,
		Symbol:      symbol,
		Orientation: orientation,
		Row:         row,
		Col:         col,
	}
	p.Tile = b.stamp(s, row, col, orientation)
	b.placements = append(b.placements, p)
	e.next++
	return &p, nil
}

// PlaceAll places every symbol in order and returns the resulting grid.
// On failure it returns the grid as it stood before the failing symbol
// together with the error; no further symbols are attempted.
func (e *Engine) PlaceAll(symbols string) (*Grid, error) {
	for i := 0; i < len(symbols); i++ {
		if _, err := e.Step(symbols[i]); err != nil {
			return e.Snapshot(), err
		}
	}
	return e.Snapshot(), nil
}

// Place is a convenience wrapper that builds a fresh engine and runs PlaceAll.
func Place(f *polyomino.Family, enc Encoding, height, width int, symbols string, opts ...Option) (*Grid, error) {
	e, err := NewEngine(f, enc, height, width, opts...)
	if err != nil {
		return nil, err
	}
	return e.PlaceAll(symbols)
}
