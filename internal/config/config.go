package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dshills/vedit/internal/engine/scan"
	"github.com/dshills/vedit/internal/logging"
	"github.com/dshills/vedit/internal/storage"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "VEDIT"

// Config holds all vedit settings.
type Config struct {
	Editor    EditorConfig    `mapstructure:"editor" toml:"editor"`
	Log       LogConfig       `mapstructure:"log" toml:"log"`
	FileTypes FileTypesConfig `mapstructure:"filetypes" toml:"filetypes"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" toml:"clipboard"`
}

// EditorConfig holds editing settings.
type EditorConfig struct {
	TabWidth        int    `mapstructure:"tab_width" toml:"tab_width"`
	ScrollOff       int    `mapstructure:"scroll_off" toml:"scroll_off"`
	BreakChars      string `mapstructure:"break_chars" toml:"break_chars"`
	MaxUndo         int    `mapstructure:"max_undo" toml:"max_undo"`
	TrailingNewline string `mapstructure:"trailing_newline" toml:"trailing_newline"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	// File receives log output. Empty disables logging in the terminal UI.
	File string `mapstructure:"file" toml:"file"`
}

// FileTypesConfig lists Lua scripts defining additional file types.
type FileTypesConfig struct {
	Scripts []string `mapstructure:"scripts" toml:"scripts"`
}

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	// System uses the OS clipboard when available.
	System bool `mapstructure:"system" toml:"system"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:        4,
			ScrollOff:       3,
			BreakChars:      scan.DefaultBreakChars,
			MaxUndo:         1000,
			TrailingNewline: string(storage.Preserve),
		},
		Log: LogConfig{
			Level: "info",
		},
		FileTypes: FileTypesConfig{
			Scripts: []string{},
		},
		Clipboard: ClipboardConfig{
			System: true,
		},
	}
}

// DefaultPath returns the user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "vedit", "config.toml")
}

// New returns a viper instance with defaults and environment overrides
// registered.
func New() *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault("editor.tab_width", d.Editor.TabWidth)
	v.SetDefault("editor.scroll_off", d.Editor.ScrollOff)
	v.SetDefault("editor.break_chars", d.Editor.BreakChars)
	v.SetDefault("editor.max_undo", d.Editor.MaxUndo)
	v.SetDefault("editor.trailing_newline", d.Editor.TrailingNewline)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("filetypes.scripts", d.FileTypes.Scripts)
	v.SetDefault("clipboard.system", d.Clipboard.System)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path, or from DefaultPath when path is
// empty, and validates it.
func Load(path string) (Config, error) {
	return Read(New(), path)
}

// Read reads the config file into v and decodes the result.
// A missing file is an error only when path was given explicitly.
func Read(v *viper.Viper, path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			if explicit {
				return Config{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
		default:
			return Config{}, &ParseError{Path: path, Err: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting and returns the first failure.
func (c Config) Validate() error {
	if c.Editor.TabWidth <= 0 {
		return &ValidationError{Key: "editor.tab_width", Message: "must be positive", Value: c.Editor.TabWidth}
	}
	if c.Editor.ScrollOff < 0 {
		return &ValidationError{Key: "editor.scroll_off", Message: "must not be negative", Value: c.Editor.ScrollOff}
	}
	if c.Editor.MaxUndo < 0 {
		return &ValidationError{Key: "editor.max_undo", Message: "must not be negative", Value: c.Editor.MaxUndo}
	}
	if _, err := storage.ParsePolicy(c.Editor.TrailingNewline); err != nil {
		return &ValidationError{Key: "editor.trailing_newline", Message: "must be preserve or strip", Value: c.Editor.TrailingNewline}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Key: "log.level", Message: "unknown level", Value: c.Log.Level}
	}
	return nil
}

// Policy returns the trailing newline policy. Validate must have passed.
func (c Config) Policy() storage.Policy {
	p, _ := storage.ParsePolicy(c.Editor.TrailingNewline)
	return p
}

// BreakSet returns the configured word break characters.
// An empty setting selects the defaults.
func (c Config) BreakSet() scan.BreakSet {
	if c.Editor.BreakChars == "" {
		return scan.DefaultBreakSet()
	}
	return scan.NewBreakSet(c.Editor.BreakChars)
}
