// Package config loads the optional cardsheet.toml configuration file.
//
// The file supplies defaults and custom sheet sizes; command-line flags
// always win over the file, and the file wins over built-ins.
//
// Example:
//
//	[defaults]
//	sheet = "LETTER"
//	scale = 0.9
//
//	[sheets]
//	TAROT = [612, 936]
//
//	[margins]
//	left = 18
//	right = 18
//	top = 18
//	bottom = 36
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"cardsheet/pkg/errors"
	"cardsheet/pkg/sheet"
)

// Config mirrors the cardsheet.toml structure.
type Config struct {
	Defaults Defaults           `toml:"defaults"`
	Sheets   map[string][]int64 `toml:"sheets"`
	Margins  *MarginOverrides   `toml:"margins"`
}

// Defaults supplies fallback values for flags the user did not set.
type Defaults struct {
	Sheet string  `toml:"sheet"`
	Scale float64 `toml:"scale"`
}

// MarginOverrides replaces the built-in margin minimums, in points.
type MarginOverrides struct {
	Left   int64 `toml:"left"`
	Right  int64 `toml:"right"`
	Top    int64 `toml:"top"`
	Bottom int64 `toml:"bottom"`
}

// Load reads a config file. A missing path (or a path that does not exist)
// yields an empty config, not an error: the file is optional.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSrcDir, err, "parsing config %s", path)
	}
	return cfg, nil
}

// ResolveSheet resolves a sheet-size name against the config's custom sizes
// first and the built-ins second.
func (c *Config) ResolveSheet(name string) (sheet.Size, error) {
	for custom, dims := range c.Sheets {
		if !strings.EqualFold(custom, name) {
			continue
		}
		if len(dims) != 2 {
			return sheet.Size{}, errors.New(errors.ErrCodeInvalidSheetSize,
				"custom sheet %q must be [width, height], got %v", custom, dims)
		}
		return sheet.Custom(custom, dims[0], dims[1])
	}
	return sheet.Parse(name)
}

// ResolveMargins returns the margin minimums, applying any overrides.
func (c *Config) ResolveMargins() sheet.Margins {
	m := sheet.DefaultMargins()
	if c.Margins == nil {
		return m
	}
	m.Left = decimal.NewFromInt(c.Margins.Left)
	m.Right = decimal.NewFromInt(c.Margins.Right)
	m.Top = decimal.NewFromInt(c.Margins.Top)
	m.Bottom = decimal.NewFromInt(c.Margins.Bottom)
	return m
}
