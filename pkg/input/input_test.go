package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/polytile/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Problem
	}{
		{
			name: "plain",
			in:   "4 4 2\n4312\n",
			want: Problem{Height: 4, Width: 4, Tag: 2, Symbols: "4312"},
		},
		{
			name: "leading commentary",
			in:   "solution found\nc sat 12 vars\n\n8 4 7\n4312\n4312\n",
			want: Problem{Height: 8, Width: 4, Tag: 7, Symbols: "43124312"},
		},
		{
			name: "dots and spaces stripped",
			in:   "8 4 0\n43.12 \n 4 3 . 1 2\n",
			want: Problem{Height: 8, Width: 4, Symbols: "43124312"},
		},
		{
			name: "no tag",
			in:   "4 4\n4312\n",
			want: Problem{Height: 4, Width: 4, Symbols: "4312"},
		},
		{
			name: "extra symbols dropped",
			in:   "4 4 1\n431299\nignored trailing text\n",
			want: Problem{Height: 4, Width: 4, Tag: 1, Symbols: "4312"},
		},
		{
			name: "windows line endings",
			in:   "4 4 1\r\n43\r\n12\r\n",
			want: Problem{Height: 4, Width: 4, Tag: 1, Symbols: "4312"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.in), 4)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errs.Code
	}{
		{"no header", "just words\n", errs.ErrCodeInvalidInput},
		{"empty", "", errs.ErrCodeInvalidInput},
		{"missing width", "4\n4312\n", errs.ErrCodeInvalidInput},
		{"bad width", "4 x\n4312\n", errs.ErrCodeInvalidInput},
		{"area not divisible", "3 3 0\n12\n", errs.ErrCodeInvalidInput},
		{"zero height", "0 4 0\n", errs.ErrCodeInvalidInput},
		{"too short", "8 4 0\n4312\n", errs.ErrCodeInvalidInput},
		{"non-digit", "4 4 0\n43a2\n", errs.ErrCodeInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in), 4)
			if !errs.Is(err, tt.code) {
				t.Errorf("Parse(%q) error = %v, want %s", tt.in, err, tt.code)
			}
		})
	}
}

func TestParseCellsPerTile(t *testing.T) {
	got, err := Parse(strings.NewReader("2 5 0\n12\n"), 5)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Symbols != "12" {
		t.Errorf("Symbols = %q, want %q", got.Symbols, "12")
	}

	if _, err := Parse(strings.NewReader("4 4 0\n4312\n"), 0); !errs.Is(err, errs.ErrCodeInvalidShape) {
		t.Errorf("Parse() with zero cells error = %v, want %s", err, errs.ErrCodeInvalidShape)
	}
}

func TestProblemName(t *testing.T) {
	p := Problem{Height: 4, Width: 6, Tag: 2}
	if got := p.Name(); got != "4x6-2" {
		t.Errorf("Name() = %q, want %q", got, "4x6-2")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.txt")
	if err := os.WriteFile(path, []byte("4 4 3\n4312\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := ParseFile(path, 4)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if p.Name() != "4x4-3" || p.Symbols != "4312" {
		t.Errorf("ParseFile() = %+v", *p)
	}

	_, err = ParseFile(filepath.Join(dir, "missing.txt"), 4)
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("ParseFile(missing) error = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}
