// Package pipeline provides the core tiling pipeline for polytile.
//
// This package implements the complete load → place → render pipeline used
// by every CLI command. By centralizing this logic, placement, caching and
// hooks behave the same no matter which command drives them.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read board dimensions and the tiling string from a problem file,
//     or take them directly from the options
//  2. Place: Build the orientation family and run the placement engine
//  3. Render: Generate output in various formats (TXT, EPS, SVG, PNG, PDF,
//     JSON, DOT and the Graphviz adjacency graph)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Height:  4,
//	    Width:   4,
//	    Symbols: "4312",
//	    Formats: []string{"txt", "eps"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eps := result.Artifacts["eps"]
//
// When the tiling string is illegal, Execute returns the error together
// with a Result whose Grid holds the board as it stood before the failing
// symbol.
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polytile/pkg/cache"
	"github.com/matzehuels/polytile/pkg/config"
	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/input"
	"github.com/matzehuels/polytile/pkg/polyomino"
	"github.com/matzehuels/polytile/pkg/render/sink"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultCellSize is the SVG edge length of one cell in pixels.
	DefaultCellSize = sink.DefaultCellSize

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultFormat is rendered when no format is requested.
	DefaultFormat = FormatTXT
)

// Format constants for output formats.
const (
	FormatTXT   = "txt"
	FormatEPS   = "eps"
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPDF   = "pdf"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatGraph = "graph"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTXT:   true,
	FormatEPS:   true,
	FormatSVG:   true,
	FormatPNG:   true,
	FormatPDF:   true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatGraph: true,
}

// FormatNames lists the supported formats in display order.
var FormatNames = []string{FormatTXT, FormatEPS, FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatGraph}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the tiling pipeline.
type Options struct {
	// Problem options. Input is a problem file; it is read only when
	// Symbols is empty.
	Input   string `json:"input,omitempty"`
	Height  int    `json:"height,omitempty"`
	Width   int    `json:"width,omitempty"`
	Tag     int    `json:"tag,omitempty"`
	Symbols string `json:"symbols,omitempty"`

	// Placement options
	Shape          polyomino.Spec  `json:"-"`
	Encoding       tiling.Encoding `json:"encoding"`
	IgnoreOverflow bool            `json:"ignore_overflow,omitempty"`

	// Render options
	Formats        []string `json:"formats,omitempty"`
	ColorDirection bool     `json:"color_direction,omitempty"`
	Chains         bool     `json:"chains,omitempty"`
	CellSize       int      `json:"cell_size,omitempty"`
	Scale          float64  `json:"scale,omitempty"`
	Detailed       bool     `json:"detailed,omitempty"` // adjacency graph labels
	Refresh        bool     `json:"refresh,omitempty"`  // ignore cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// FromConfig returns options carrying the shape, encoding and render
// settings of cfg.
func FromConfig(cfg *config.Config) (Options, error) {
	spec, err := cfg.Spec()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Shape:          spec,
		Encoding:       cfg.TilingEncoding(),
		Formats:        slices.Clone(cfg.Render.Formats),
		ColorDirection: cfg.Render.ColorDirection,
		Chains:         cfg.Render.Chains,
		CellSize:       cfg.Render.CellSize,
	}, nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs.
	RunID string

	// Problem is the loaded board and tiling string.
	Problem *input.Problem

	// ProblemHash is the content hash of the problem.
	ProblemHash string

	// Family is the orientation family that was placed.
	Family *polyomino.Family

	// Grid is the placed board. After a failed placement it holds the
	// state before the failing symbol.
	Grid *tiling.Grid

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tiles      int
	Ignored    int
	Open       int
	LoadTime   time.Duration
	PlaceTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
	Hits      int  // Artifacts served from cache
	Misses    int  // Artifacts rendered in this run
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FileName returns the output file name of format for a problem named
// base, such as "4x6-2.eps".
func FileName(base, format string) string {
	if format == FormatGraph {
		return base + ".graph.svg"
	}
	return base + "." + format
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForPlace(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForPlace checks the problem source and applies placement defaults.
func (o *Options) ValidateForPlace() error {
	if o.Symbols == "" && o.Input == "" {
		return errs.New(errs.ErrCodeInvalidInput, "tiling string or input file is required")
	}
	if o.Symbols != "" && (o.Height <= 0 || o.Width <= 0) {
		return errs.New(errs.ErrCodeInvalidInput, "board dimensions must be positive, got %dx%d", o.Height, o.Width)
	}
	o.SetPlaceDefaults()
	return nil
}

// SetPlaceDefaults sets default values for placement.
func (o *Options) SetPlaceDefaults() {
	if o.Shape.Length == 0 {
		o.Shape, _ = polyomino.Preset(polyomino.DefaultPreset)
	}
	if o.Encoding.Modulus == 0 {
		o.Encoding = tiling.DefaultEncoding
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetPlaceDefaults()
	o.SetRenderDefaults()
	if o.CellSize < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "cell size must be positive, got %d", o.CellSize)
	}
	if o.Scale < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "scale must be positive, got %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// ShapeKey fingerprints the configured shape for cache keys. Two custom
// shapes with the same name but different cells get different keys.
func (o *Options) ShapeKey() string {
	return fmt.Sprintf("%s/%s/%d/%t", o.Shape.Name, o.Shape.Base().String(), o.Shape.Rotations, o.Shape.Reflect)
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:         format,
		Shape:          o.ShapeKey(),
		Modulus:        o.Encoding.Modulus,
		Shift:          o.Encoding.Shift,
		IgnoreOverflow: o.IgnoreOverflow,
		ColorDirection: o.ColorDirection,
		Chains:         o.Chains,
		CellSize:       o.CellSize,
		Scale:          o.Scale,
		Detailed:       o.Detailed,
	}
}
