// Package config loads quill's optional configuration file.
//
// Configuration lives in a TOML file, by default .quill.toml in the working
// directory:
//
//	[render]
//	max_width = 80
//	color = true
//
// Every key is optional, anything left out keeps its default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the name of the config file looked for when none is given explicitly.
const DefaultFile = ".quill.toml"

// defaultMaxWidth matches the renderer's own default.
const defaultMaxWidth = 80

// ErrInvalid is returned when a config file decodes but contains bad values or
// keys quill doesn't know about.
var ErrInvalid = errors.New("invalid config")

// Config is the complete quill configuration.
type Config struct {
	// Render controls how diagnostics are drawn.
	Render Render `toml:"render"`
}

// Render is the [render] table.
type Render struct {
	// MaxWidth is the number of bytes of a source line shown either side of
	// a diagnostic's span.
	MaxWidth int `toml:"max_width"`

	// Color enables highlighting the span in colour.
	Color bool `toml:"color"`
}

// Default returns the configuration used when there is no config file.
func Default() Config {
	return Config{
		Render: Render{
			MaxWidth: defaultMaxWidth,
			Color:    true,
		},
	}
}

// Load reads the config file at path.
//
// If path is empty, [DefaultFile] is tried instead and it not existing is not
// an error, the defaults are returned. An explicitly requested file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg, err := decode(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, err
	}

	return cfg, nil
}

// Validate reports whether the config is usable, returning an error wrapping
// [ErrInvalid] if not.
func (c Config) Validate() error {
	if c.Render.MaxWidth < 1 {
		return fmt.Errorf("%w: render.max_width must be at least 1, got %d", ErrInvalid, c.Render.MaxWidth)
	}

	return nil
}

// decode decodes and validates the file at path on top of the defaults.
func decode(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}

	cfg := Default()

	meta, err := toml.Decode(string(contents), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: could not decode TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
