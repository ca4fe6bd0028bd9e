// Package config loads the settings of the lispy command line tools from
// TOML or YAML files and from LISPY_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xiam/lispy/parser"
)

// Format is the encoding of a configuration file
type Format int

// Supported formats
const (
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	}
	return "unknown"
}

// Read modes
const (
	ModeOne = "one"
	ModeAll = "all"
)

// Output formats
const (
	OutputSexpr = "sexpr"
	OutputTree  = "tree"
)

// EnvPrefix is prepended to the upper-cased key names to build the
// environment overrides, e.g. LISPY_MAX_DEPTH.
const EnvPrefix = "LISPY_"

var ErrInvalid = errors.New("invalid configuration")

// Config holds the user settings
type Config struct {
	// Mode is either "one" (a single top-level expression per input) or
	// "all".
	Mode string `toml:"mode" yaml:"mode"`
	// Format selects how trees are printed: "sexpr" or "tree".
	Format   string `toml:"format" yaml:"format"`
	Prompt   string `toml:"prompt" yaml:"prompt"`
	MaxDepth int    `toml:"max_depth" yaml:"max_depth"`
	Color    bool   `toml:"color" yaml:"color"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Mode:     ModeOne,
		Format:   OutputSexpr,
		Prompt:   "lispy> ",
		MaxDepth: parser.DefaultMaxDepth,
		Color:    true,
	}
}

// DefaultPath returns $HOME/.config/lispy/config.toml, or an empty string
// if the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lispy", "config.toml")
}

// Load reads the file at path on top of the defaults, applies environment
// overrides and validates the result. An empty path loads DefaultPath if
// that file exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
		if _, err := os.Stat(path); path == "" || err != nil {
			path = ""
		}
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "config: failed to read config file")
		}
		if err := cfg.decode(content, detectFormat(path)); err != nil {
			return nil, errors.Wrapf(err, "config: failed to parse %s", path)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromString parses content in the given format on top of the
// defaults.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()
	if err := cfg.decode([]byte(content), format); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func (c *Config) decode(content []byte, format Format) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, c); err != nil {
			return errors.Wrap(err, "YAML parse error")
		}
	case FormatTOML, FormatAuto:
		if _, err := toml.Decode(string(content), c); err != nil {
			return errors.Wrap(err, "TOML parse error")
		}
	default:
		return errors.Errorf("unsupported format %v", format)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "MODE"); ok {
		c.Mode = v
	}
	if v, ok := lookup(EnvPrefix + "FORMAT"); ok {
		c.Format = v
	}
	if v, ok := lookup(EnvPrefix + "PROMPT"); ok {
		c.Prompt = v
	}
	if v, ok := lookup(EnvPrefix + "MAX_DEPTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sMAX_DEPTH: %q is not a number", EnvPrefix, v)
		}
		c.MaxDepth = n
	}
	if v, ok := lookup(EnvPrefix + "COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sCOLOR: %q is not a boolean", EnvPrefix, v)
		}
		c.Color = b
	}
	return nil
}

// Validate checks that every setting has an accepted value
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeOne, ModeAll:
	default:
		return errors.Wrapf(ErrInvalid, "mode must be %q or %q, got %q", ModeOne, ModeAll, c.Mode)
	}
	switch c.Format {
	case OutputSexpr, OutputTree:
	default:
		return errors.Wrapf(ErrInvalid, "format must be %q or %q, got %q", OutputSexpr, OutputTree, c.Format)
	}
	if c.MaxDepth < 1 {
		return errors.Wrapf(ErrInvalid, "max_depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// ParserOptions maps the settings to parser options
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		MaxDepth: c.MaxDepth,
	}
}
