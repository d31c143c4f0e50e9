package tiling_test

import (
	"fmt"

	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/polyomino"
	"github.com/matzehuels/polytile/pkg/tiling"
)

func ExampleEngine_PlaceAll() {
	spec, _ := polyomino.Preset("T")
	f, _ := polyomino.BuildFamily(spec)

	e, err := tiling.NewEngine(f, tiling.DefaultEncoding, 4, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := e.PlaceAll("4312")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range g.Rows() {
		fmt.Println(row)
	}
	fmt.Println("tiles:", g.Count(), "complete:", g.Complete())
	// Output:
	// [3 3 3 6]
	// [8 3 6 6]
	// [8 8 13 6]
	// [8 13 13 13]
	// tiles: 4 complete: true
}

func ExampleEngine_PlaceAll_illegal() {
	spec, _ := polyomino.Preset("T")
	f, _ := polyomino.BuildFamily(spec)

	_, err := tiling.Place(f, tiling.DefaultEncoding, 4, 6, "121111")
	fmt.Println(errs.GetCode(err))
	fmt.Println(errs.UserMessage(err))
	// Output:
	// ILLEGAL_PLACEMENT
	// illegal tiling string for w=6 and h=4
}
