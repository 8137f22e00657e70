// Package config loads the scinot TOML configuration.
package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/zeebo/errs"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// Warning policies.
const (
	WarningsWarn   = "warn"
	WarningsError  = "error"
	WarningsIgnore = "ignore"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config controls how the command reports results.
type Config struct {
	// Warnings selects what happens to precision warnings: print them
	// (warn), fail the command (error) or drop them (ignore).
	Warnings string `toml:"warnings"`

	// Output is text or json.
	Output string `toml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Warnings: WarningsWarn,
		Output:   OutputText,
	}
}

// Load reads the file at path over the defaults. An empty path or a missing
// file yields the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}

		return Config{}, Error.Wrap(err)
	}

	if err := c.decode(data); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) decode(data []byte) error {
	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()

	if err := d.Decode(c); err != nil {
		return Error.Wrap(err)
	}

	return c.Validate()
}

// Validate checks that every field holds a known value.
func (c Config) Validate() error {
	switch c.Warnings {
	case WarningsWarn, WarningsError, WarningsIgnore:
	default:
		return Error.New("unknown warnings policy %q", c.Warnings)
	}

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return Error.New("unknown output format %q", c.Output)
	}

	return nil
}
