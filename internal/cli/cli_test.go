package cli

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/observability"
	"github.com/matzehuels/polytile/pkg/tiling"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"eps", []string{"eps"}},
		{"eps,svg", []string{"eps", "svg"}},
		{" EPS , svg,", []string{"eps", "svg"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// newTestCommand returns a command with the problem flags parsed from args.
func newTestCommand(t *testing.T, pf *problemFlags, flags ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	pf.register(cmd)
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("ParseFlags(%v) error: %v", flags, err)
	}
	return cmd
}

func TestBuildOptionsSymbols(t *testing.T) {
	c := New(io.Discard, LogInfo)
	var pf problemFlags
	cmd := newTestCommand(t, &pf, "--symbols", "4312", "-H", "4", "-W", "4", "--tag", "9")

	opts, err := c.buildOptions(cmd, &pf, nil)
	if err != nil {
		t.Fatalf("buildOptions() error: %v", err)
	}
	if opts.Height != 4 || opts.Width != 4 || opts.Tag != 9 || opts.Symbols != "4312" {
		t.Errorf("buildOptions() problem = %dx%d tag %d %q", opts.Height, opts.Width, opts.Tag, opts.Symbols)
	}
	if opts.Shape.Name != "T" {
		t.Errorf("Shape.Name = %q, want T", opts.Shape.Name)
	}
	if opts.Encoding != tiling.DefaultEncoding {
		t.Errorf("Encoding = %+v, want %+v", opts.Encoding, tiling.DefaultEncoding)
	}
}

func TestBuildOptionsFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "polytile.toml")
	cfg := "[shape]\npreset = \"T\"\n[encoding]\nmodulus = 4\nshift = 3\n[render]\nchains = true\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	c.configPath = cfgPath
	var pf problemFlags
	cmd := newTestCommand(t, &pf, "--shape", "l", "--modulus", "8", "--shift", "0", "--ignore-overflow")

	opts, err := c.buildOptions(cmd, &pf, []string{"problem.txt"})
	if err != nil {
		t.Fatalf("buildOptions() error: %v", err)
	}
	if opts.Shape.Name != "L" {
		t.Errorf("Shape.Name = %q, want L", opts.Shape.Name)
	}
	if opts.Encoding != (tiling.Encoding{Modulus: 8, Shift: 0}) {
		t.Errorf("Encoding = %+v, want {8 0}", opts.Encoding)
	}
	if !opts.IgnoreOverflow {
		t.Error("IgnoreOverflow should be set")
	}
	if !opts.Chains {
		t.Error("Chains should come from the config file")
	}
	if opts.Input != "problem.txt" {
		t.Errorf("Input = %q, want problem.txt", opts.Input)
	}
}

func TestBuildOptionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		args  []string
		code  errs.Code
	}{
		{"no problem", nil, nil, errs.ErrCodeInvalidInput},
		{"symbols and file", []string{"--symbols", "4312"}, []string{"p.txt"}, errs.ErrCodeInvalidInput},
		{"unknown shape", []string{"--shape", "Z"}, []string{"p.txt"}, errs.ErrCodeInvalidShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(io.Discard, LogInfo)
			var pf problemFlags
			cmd := newTestCommand(t, &pf, tt.flags...)
			_, err := c.buildOptions(cmd, &pf, tt.args)
			if !errs.Is(err, tt.code) {
				t.Errorf("buildOptions() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestBuildOptionsMissingConfig(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.configPath = filepath.Join(t.TempDir(), "missing.toml")
	var pf problemFlags
	cmd := newTestCommand(t, &pf, "--symbols", "4312", "-H", "4", "-W", "4")

	_, err := c.buildOptions(cmd, &pf, nil)
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("buildOptions() error = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}

func TestRenderCommandWritesFiles(t *testing.T) {
	t.Cleanup(observability.Reset)
	out := t.TempDir()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", "--symbols", "4312", "-H", "4", "-W", "4", "--tag", "2",
		"-f", "txt,json,dot", "-o", out, "--no-cache"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render error: %v", err)
	}

	for _, name := range []string{"4x4-2.txt", "4x4-2.json", "4x4-2.dot"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(out, "4x4-2.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "+--+--+--+--+") {
		t.Errorf("txt output =\n%s", data)
	}
}

func TestPlaceCommandIllegalString(t *testing.T) {
	t.Cleanup(observability.Reset)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"place", "--symbols", "121111", "-H", "4", "-W", "6"})

	err := root.Execute()
	if !errs.Is(err, errs.ErrCodeIllegalPlacement) {
		t.Errorf("place error = %v, want %s", err, errs.ErrCodeIllegalPlacement)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"place", "render", "shapes", "view", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}
