// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml"
	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/atommesh/bond"
	"github.com/katalvlaran/atommesh/mesh"
)

var (
	// ErrInvalidBounds indicates a bond window that is not 0 < min < max.
	ErrInvalidBounds = errors.New("config: bond lengths must satisfy 0 < min < max")

	// ErrInvalidScale indicates a non-positive mesh scale.
	ErrInvalidScale = errors.New("config: mesh scale must be > 0")
)

// Default file names.
const (
	DefaultInput  = "input.xyz"
	DefaultOutput = "output.obj"
)

// Bond holds the bond length window.
type Bond struct {
	MinLength float64 `toml:"min_length"`
	MaxLength float64 `toml:"max_length"`
}

// Mesh holds output shaping knobs.
type Mesh struct {
	Scale     float64 `toml:"scale"`
	Name      string  `toml:"name"`
	Heptagons bool    `toml:"heptagons"`
	Preview   string  `toml:"preview"`
}

// Config is the full run configuration.
type Config struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
	Bond   Bond   `toml:"bond"`
	Mesh   Mesh   `toml:"mesh"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Bond: Bond{
			MinLength: bond.DefaultMinLength,
			MaxLength: bond.DefaultMaxLength,
		},
		Mesh: Mesh{
			Scale: mesh.DefaultScale,
			Name:  mesh.DefaultName,
		},
	}
}

// Load overlays the TOML file at path onto cfg. Keys absent from the file keep
// their current values; integer literals are accepted for float keys.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "config: read %s", path)
	}
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return pkgerrors.Wrapf(err, "config: parse %s", path)
	}
	if err := overlay(tree, cfg); err != nil {
		return pkgerrors.Wrapf(err, "config: %s", path)
	}

	return nil
}

// overlay copies every known key present in tree into cfg.
func overlay(tree *toml.Tree, cfg *Config) error {
	strs := map[string]*string{
		"input":        &cfg.Input,
		"output":       &cfg.Output,
		"mesh.name":    &cfg.Mesh.Name,
		"mesh.preview": &cfg.Mesh.Preview,
	}
	floats := map[string]*float64{
		"bond.min_length": &cfg.Bond.MinLength,
		"bond.max_length": &cfg.Bond.MaxLength,
		"mesh.scale":      &cfg.Mesh.Scale,
	}

	for key, dst := range strs {
		if !tree.Has(key) {
			continue
		}
		v, ok := tree.Get(key).(string)
		if !ok {
			return fmt.Errorf("%s: want string, got %T", key, tree.Get(key))
		}
		*dst = v
	}
	for key, dst := range floats {
		if !tree.Has(key) {
			continue
		}
		switch v := tree.Get(key).(type) {
		case float64:
			*dst = v
		case int64:
			*dst = float64(v)
		default:
			return fmt.Errorf("%s: want number, got %T", key, v)
		}
	}
	if tree.Has("mesh.heptagons") {
		v, ok := tree.Get("mesh.heptagons").(bool)
		if !ok {
			return fmt.Errorf("mesh.heptagons: want bool, got %T", tree.Get("mesh.heptagons"))
		}
		cfg.Mesh.Heptagons = v
	}

	return nil
}

// Write encodes cfg as TOML, e.g. to seed a config file from the effective settings.
func Write(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// BindFlags registers the command-line flags on fs, writing into cfg.
// The short -mn/-mx names match the historical CLI.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Input, "in", cfg.Input, "input XYZ structure file")
	fs.StringVar(&cfg.Output, "out", cfg.Output, "output OBJ mesh file")
	fs.Float64Var(&cfg.Bond.MinLength, "mn", cfg.Bond.MinLength, "min bond length for connection table")
	fs.Float64Var(&cfg.Bond.MaxLength, "mx", cfg.Bond.MaxLength, "max bond length for connection table")
	fs.Float64Var(&cfg.Mesh.Scale, "scale", cfg.Mesh.Scale, "vertex coordinate scale factor")
	fs.StringVar(&cfg.Mesh.Name, "name", cfg.Mesh.Name, "OBJ object name")
	fs.BoolVar(&cfg.Mesh.Heptagons, "heptagons", cfg.Mesh.Heptagons, "also triangulate 7-membered rings")
	fs.StringVar(&cfg.Mesh.Preview, "png", cfg.Mesh.Preview, "optional PNG preview path")
}

// Validate checks the invariants the pipeline relies on.
func (c Config) Validate() error {
	if !(c.Bond.MinLength > 0) || !(c.Bond.MinLength < c.Bond.MaxLength) {
		return fmt.Errorf("min=%g max=%g: %w", c.Bond.MinLength, c.Bond.MaxLength, ErrInvalidBounds)
	}
	if !(c.Mesh.Scale > 0) {
		return fmt.Errorf("scale=%g: %w", c.Mesh.Scale, ErrInvalidScale)
	}

	return nil
}
