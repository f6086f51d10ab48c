package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/humanlogio/hl"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk form of the options. Nil fields were not set and
// fall back to another config, see PopulateEmpty.
type Config struct {
	Fields     *[]string `yaml:"fields"`
	Delimiter  *string   `yaml:"delimiter"`
	Skip       *string   `yaml:"skip"`
	YellowSize *string   `yaml:"yellow_size"`
	RedSize    *string   `yaml:"red_size"`
	ColorMode  *string   `yaml:"color_mode"`
}

var DefaultConfig = Config{
	Fields:     ptr([]string{}),
	Delimiter:  ptr(" "),
	Skip:       nil,
	YellowSize: ptr(humanize.Bytes(hl.DefaultYellowSize)),
	RedSize:    ptr(humanize.Bytes(hl.DefaultRedSize)),
	ColorMode:  ptr("on"),
}

// GetDefaultConfigFilepath returns where a config file is looked up when
// none is given. The file doesn't have to exist.
func GetDefaultConfigFilepath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("$HOME not set, can't determine a config file path")
	}
	return filepath.Join(home, ".config", "hl", "config.yaml"), nil
}

// ReadConfigFile reads the config at path, filling unset values from
// dflt. A missing file yields dflt, unless mustExist is set.
func ReadConfigFile(path string, dflt *Config, mustExist bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return dflt, nil
		}
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config file %q: %w", path, err)
	}
	return cfg.PopulateEmpty(dflt), nil
}

// PopulateEmpty returns a copy of cfg where unset values are taken from
// other.
func (cfg Config) PopulateEmpty(other *Config) *Config {
	out := cfg
	if out.Fields == nil && other.Fields != nil {
		out.Fields = other.Fields
	}
	if out.Delimiter == nil && other.Delimiter != nil {
		out.Delimiter = other.Delimiter
	}
	if out.Skip == nil && other.Skip != nil {
		out.Skip = other.Skip
	}
	if out.YellowSize == nil && other.YellowSize != nil {
		out.YellowSize = other.YellowSize
	}
	if out.RedSize == nil && other.RedSize != nil {
		out.RedSize = other.RedSize
	}
	if out.ColorMode == nil && other.ColorMode != nil {
		out.ColorMode = other.ColorMode
	}
	return &out
}

// Options builds highlighting options out of the config. Bindings that
// are shadowed by an earlier one on the same field are returned in dups.
func (cfg *Config) Options() (*hl.Options, []hl.DuplicateField, error) {
	opts := hl.DefaultOptions()
	var dups []hl.DuplicateField
	if cfg.Fields != nil {
		fields, d, err := hl.ParseFieldColors(*cfg.Fields)
		if err != nil {
			return nil, nil, err
		}
		opts.Fields = fields
		dups = d
	}
	if cfg.Delimiter != nil {
		opts.Delimiter = *cfg.Delimiter
	}
	if cfg.Skip != nil {
		skip := *cfg.Skip
		opts.Skip = &skip
	}
	if cfg.YellowSize != nil {
		v, err := humanize.ParseBytes(*cfg.YellowSize)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing yellow size %q: %w", *cfg.YellowSize, err)
		}
		opts.YellowSize = v
	}
	if cfg.RedSize != nil {
		v, err := humanize.ParseBytes(*cfg.RedSize)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing red size %q: %w", *cfg.RedSize, err)
		}
		opts.RedSize = v
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	return opts, dups, nil
}

type ColorMode int

const (
	ColorModeOff ColorMode = iota
	ColorModeOn
	ColorModeAuto
)

func GrokColorMode(colorMode string) (ColorMode, error) {
	switch strings.ToLower(colorMode) {
	case "on", "always", "force", "true", "yes", "1":
		return ColorModeOn, nil
	case "off", "never", "false", "no", "0":
		return ColorModeOff, nil
	case "auto", "tty", "maybe", "":
		return ColorModeAuto, nil
	default:
		return ColorModeAuto, fmt.Errorf("'%s' is not a color mode (try 'on', 'off' or 'auto')", colorMode)
	}
}

func ptr[T any](v T) *T {
	return &v
}
