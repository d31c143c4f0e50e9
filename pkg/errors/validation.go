package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateTilingString checks that s consists only of decimal digits.
// The returned error names the first offending position.
func ValidateTilingString(s string) error {
	if s == "" {
		return New(ErrCodeInvalidSymbol, "tiling string cannot be empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return New(ErrCodeInvalidSymbol, "symbol %q at index %d is not a digit", s[i], i)
		}
	}
	return nil
}

// ValidateDimensions checks that a board of height×width can be split into
// tiles of cellsPerTile cells.
func ValidateDimensions(height, width, cellsPerTile int) error {
	if height <= 0 || width <= 0 {
		return New(ErrCodeInvalidInput, "board dimensions must be positive, got %dx%d", height, width)
	}
	if cellsPerTile <= 0 {
		return New(ErrCodeInvalidShape, "shape must cover at least one cell")
	}
	if (height*width)%cellsPerTile != 0 {
		return New(ErrCodeInvalidInput, "board area %d (%dx%d) is not a multiple of the tile size %d",
			height*width, height, width, cellsPerTile)
	}
	return nil
}

// shapeNameRegex matches shape names usable in file names and config keys.
var shapeNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateShapeName validates a shape name from a config file or flag.
func ValidateShapeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidShape, "shape name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidShape, "shape name too long (max 64 characters)")
	}
	if !shapeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidShape, "invalid shape name: %q", name)
	}
	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path cannot start or end with whitespace")
	}

	return nil
}
