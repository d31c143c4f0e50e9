package pipeline

import (
	"testing"

	"github.com/matzehuels/polytile/pkg/config"
	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/polyomino"
	"github.com/matzehuels/polytile/pkg/tiling"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"txt", false},
		{"eps", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"graph", false},
		{"invalid", true},
		{"EPS", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.format, errs.GetCode(err), errs.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"txt", "eps"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		format, want string
	}{
		{FormatTXT, "4x6-2.txt"},
		{FormatEPS, "4x6-2.eps"},
		{FormatGraph, "4x6-2.graph.svg"},
	}
	for _, tt := range tests {
		if got := FileName("4x6-2", tt.format); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestOptionsValidateForPlace(t *testing.T) {
	// Missing symbols and input
	opts := Options{Height: 4, Width: 4}
	if err := opts.ValidateForPlace(); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Missing problem error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}

	// Symbols without dimensions
	opts = Options{Symbols: "4312"}
	if err := opts.ValidateForPlace(); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Missing dimensions error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}

	// Input file alone is enough
	opts = Options{Input: "problem.txt"}
	if err := opts.ValidateForPlace(); err != nil {
		t.Errorf("Input file options should pass: %v", err)
	}
}

func TestSetPlaceDefaults(t *testing.T) {
	opts := Options{}
	opts.SetPlaceDefaults()

	if opts.Shape.Name != polyomino.DefaultPreset {
		t.Errorf("Shape should be %s, got %q", polyomino.DefaultPreset, opts.Shape.Name)
	}
	if opts.Encoding != tiling.DefaultEncoding {
		t.Errorf("Encoding should be %+v, got %+v", tiling.DefaultEncoding, opts.Encoding)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatTXT {
		t.Errorf("Formats should be [txt], got %v", opts.Formats)
	}
	if opts.CellSize != DefaultCellSize {
		t.Errorf("CellSize should be %d, got %d", DefaultCellSize, opts.CellSize)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %g, got %g", DefaultScale, opts.Scale)
	}
}

func TestValidateForRenderRejectsNegativeSizes(t *testing.T) {
	opts := Options{CellSize: -1}
	if err := opts.ValidateForRender(); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("negative cell size error = %v, want %s", err, errs.ErrCodeInvalidConfig)
	}
	opts = Options{Scale: -2}
	if err := opts.ValidateForRender(); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("negative scale error = %v, want %s", err, errs.ErrCodeInvalidConfig)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Height: 4, Width: 4, Symbols: "4312"}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalFormats := opts.Formats
	originalEncoding := opts.Encoding

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if len(opts.Formats) != len(originalFormats) {
		t.Error("Formats changed on second call")
	}
	if opts.Encoding != originalEncoding {
		t.Error("Encoding changed on second call")
	}
}

func TestShapeKey(t *testing.T) {
	tee, _ := polyomino.Preset("T")
	ell, _ := polyomino.Preset("L")

	a := Options{Shape: tee}
	b := Options{Shape: ell}
	if a.ShapeKey() == b.ShapeKey() {
		t.Errorf("ShapeKey() should differ for T and L, both %q", a.ShapeKey())
	}

	// Same name, different cells
	custom, err := polyomino.NewSpec("T", []string{"XX", "XX"}, 1, false)
	if err != nil {
		t.Fatalf("NewSpec() error: %v", err)
	}
	c := Options{Shape: custom}
	if a.ShapeKey() == c.ShapeKey() {
		t.Error("ShapeKey() should include the cells, not only the name")
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Chains: true, CellSize: 30}
	opts.SetPlaceDefaults()

	ko := opts.ArtifactKeyOpts(FormatSVG)
	if ko.Format != FormatSVG {
		t.Errorf("Format = %q, want %q", ko.Format, FormatSVG)
	}
	if !ko.Chains || ko.CellSize != 30 {
		t.Errorf("ArtifactKeyOpts() = %+v, want chains and cell size 30", ko)
	}
	if ko.Modulus != tiling.DefaultEncoding.Modulus || ko.Shift != tiling.DefaultEncoding.Shift {
		t.Errorf("ArtifactKeyOpts() encoding = %d/%d, want %+v", ko.Modulus, ko.Shift, tiling.DefaultEncoding)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Chains = true
	cfg.Render.Formats = []string{"eps", "svg"}

	opts, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() error: %v", err)
	}
	if opts.Shape.Name != "T" {
		t.Errorf("Shape.Name = %q, want T", opts.Shape.Name)
	}
	if opts.Encoding != tiling.DefaultEncoding {
		t.Errorf("Encoding = %+v, want %+v", opts.Encoding, tiling.DefaultEncoding)
	}
	if !opts.Chains {
		t.Error("Chains should carry over")
	}
	if len(opts.Formats) != 2 || opts.Formats[0] != "eps" {
		t.Errorf("Formats = %v, want [eps svg]", opts.Formats)
	}

	// The options own their format slice.
	cfg.Render.Formats[0] = "pdf"
	if opts.Formats[0] != "eps" {
		t.Error("Formats should be copied from the config")
	}
}
