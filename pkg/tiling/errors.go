package tiling

import "fmt"

// Reason describes why a symbol could not be placed.
type Reason string

const (
	ReasonOutOfBounds   Reason = "extends past the board edge"
	ReasonOverlap       Reason = "overlaps an earlier tile"
	ReasonBoardFull     Reason = "board is already full"
	ReasonInvalidSymbol Reason = "symbol is not a digit"
)

// PlacementError reports the symbol that stopped a run. Row and Col are the
// 1-based anchor cell, zero when no anchor exists. Orientation is -1 when
// the symbol was not mapped.
type PlacementError struct {
	Index       int
	Symbol      byte
	Orientation int
	Row, Col    int
	Height      int
	Width       int
	Reason      Reason
}

func (e *PlacementError) Error() string {
	if e.Orientation < 0 {
		return fmt.Sprintf("symbol %d (%q): %s", e.Index, e.Symbol, e.Reason)
	}
	return fmt.Sprintf("symbol %d (%q), orientation %d at row %d, column %d: %s",
		e.Index, e.Symbol, e.Orientation, e.Row, e.Col, e.Reason)
}
