package errors

import (
	"testing"
)

func TestValidateTilingString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"digits", "4312", false},
		{"single", "0", false},
		{"all digits", "0123456789", false},

		{"empty", "", true},
		{"letter", "43a2", true},
		{"space", "43 2", true},
		{"dot", "4.3", true},
		{"unicode digit", "４", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTilingString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTilingString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSymbol) {
				t.Errorf("ValidateTilingString(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidSymbol)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name         string
		height       int
		width        int
		cellsPerTile int
		wantCode     Code
	}{
		{"4x4 tetromino", 4, 4, 4, ""},
		{"4x6 tetromino", 4, 6, 4, ""},
		{"5x5 pentomino", 5, 5, 5, ""},
		{"zero height", 0, 4, 4, ErrCodeInvalidInput},
		{"negative width", 4, -4, 4, ErrCodeInvalidInput},
		{"area not multiple", 3, 3, 4, ErrCodeInvalidInput},
		{"empty shape", 4, 4, 0, ErrCodeInvalidShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.height, tt.width, tt.cellsPerTile)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateDimensions(%d, %d, %d) code = %q, want %q",
					tt.height, tt.width, tt.cellsPerTile, got, tt.wantCode)
			}
		})
	}
}

func TestValidateShapeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"preset", "T", false},
		{"with dash", "t-tetromino", false},
		{"with underscore", "skew_4", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 65)), true},
		{"leading dash", "-t", true},
		{"slash", "a/b", true},
		{"space", "a b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShapeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShapeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/4x4-0.eps", false},
		{"absolute", "/tmp/tiling.svg", false},
		{"simple", "tiling.txt", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"trailing space", "foo.svg ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
