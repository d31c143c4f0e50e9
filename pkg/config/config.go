// Package config loads shape, encoding and render settings from TOML or
// YAML files.
//
// A configuration names either a built-in preset or a custom shape drawn
// row by row:
//
//	[shape]
//	name = "P"
//	rows = ["XX", "XX", "X."]
//	rotations = 4
//	reflect = true
//
//	[encoding]
//	modulus = 8
//	shift = 7
//
// Missing sections keep their defaults: the T-tetromino with the Korn–Pak
// encoding, rendered as ASCII art.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/polyomino"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// Default render settings.
const (
	DefaultFormat   = "txt"
	DefaultCellSize = 20
)

// Format names a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Config is the full file configuration.
type Config struct {
	Shape    Shape    `toml:"shape" yaml:"shape"`
	Encoding Encoding `toml:"encoding" yaml:"encoding"`
	Render   Render   `toml:"render" yaml:"render"`
}

// Shape selects the polyomino. Preset wins over Rows when both are set.
type Shape struct {
	Preset    string   `toml:"preset" yaml:"preset"`
	Name      string   `toml:"name" yaml:"name"`
	Rows      []string `toml:"rows" yaml:"rows"`
	Rotations int      `toml:"rotations" yaml:"rotations"`
	Reflect   bool     `toml:"reflect" yaml:"reflect"`
}

// Encoding mirrors tiling.Encoding.
type Encoding struct {
	Modulus int `toml:"modulus" yaml:"modulus"`
	Shift   int `toml:"shift" yaml:"shift"`
}

// Render holds output settings shared by the formatters.
type Render struct {
	Formats        []string `toml:"formats" yaml:"formats"`
	ColorDirection bool     `toml:"color_direction" yaml:"color_direction"`
	Chains         bool     `toml:"chains" yaml:"chains"`
	CellSize       int      `toml:"cell_size" yaml:"cell_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Shape:    Shape{Preset: polyomino.DefaultPreset},
		Encoding: Encoding{Modulus: tiling.DefaultEncoding.Modulus, Shift: tiling.DefaultEncoding.Shift},
		Render:   Render{Formats: []string{DefaultFormat}, CellSize: DefaultCellSize},
	}
}

// Load reads the file at path, choosing the syntax from its extension.
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// FormatFor maps a file extension to its syntax.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidConfig, "unsupported config file %q (want .toml, .yaml or .yml)", path)
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	cfg.Shape = Shape{} // rows in the file must not lose to the default preset
	var err error
	switch format {
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), cfg)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown config format %q", format)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode %s", format)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize fills values a file may leave out.
func (c *Config) normalize() {
	if c.Shape.Preset == "" && len(c.Shape.Rows) == 0 {
		c.Shape.Preset = polyomino.DefaultPreset
	}
	if len(c.Shape.Rows) > 0 && c.Shape.Rotations == 0 {
		c.Shape.Rotations = 4
	}
	if len(c.Render.Formats) == 0 {
		c.Render.Formats = []string{DefaultFormat}
	}
	for i, f := range c.Render.Formats {
		c.Render.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	if c.Render.CellSize == 0 {
		c.Render.CellSize = DefaultCellSize
	}
}

// Validate checks that the shape builds and the encoding fits its family.
func (c *Config) Validate() error {
	f, err := c.Family()
	if err != nil {
		return err
	}
	if err := c.TilingEncoding().Validate(f.Len()); err != nil {
		return err
	}
	if c.Render.CellSize < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "cell_size must be positive, got %d", c.Render.CellSize)
	}
	return nil
}

// Spec returns the configured base shape.
func (c *Config) Spec() (polyomino.Spec, error) {
	if c.Shape.Preset != "" {
		spec, ok := polyomino.Preset(c.Shape.Preset)
		if !ok {
			return polyomino.Spec{}, errs.New(errs.ErrCodeInvalidShape,
				"unknown preset %q (available: %s)", c.Shape.Preset, strings.Join(polyomino.Presets(), ", "))
		}
		return spec, nil
	}
	name := c.Shape.Name
	if name == "" {
		name = "custom"
	}
	return polyomino.NewSpec(name, c.Shape.Rows, c.Shape.Rotations, c.Shape.Reflect)
}

// Family builds the orientation family of the configured shape.
func (c *Config) Family() (*polyomino.Family, error) {
	spec, err := c.Spec()
	if err != nil {
		return nil, err
	}
	return polyomino.BuildFamily(spec)
}

// TilingEncoding returns the configured symbol encoding.
func (c *Config) TilingEncoding() tiling.Encoding {
	return tiling.Encoding{Modulus: c.Encoding.Modulus, Shift: c.Encoding.Shift}
}
