package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/draftforge/draftforge/internal/clipboard"
	"github.com/draftforge/draftforge/internal/input/keymap"
)

// ErrInvalidLogLevel indicates an unrecognized logging.level value.
var ErrInvalidLogLevel = errors.New("config: invalid log level")

// Config is the full draftforge configuration.
type Config struct {
	// Keymap maps action names to chord specs, overriding the default
	// binding for that action. Example: "clipboard.copy: Ctrl+Shift+C".
	Keymap map[string]string `yaml:"keymap"`

	// BulkDeleteThreshold is the selection size at which delete asks
	// for confirmation. Zero keeps the built-in default.
	BulkDeleteThreshold int `yaml:"bulk_delete_threshold"`

	// Clipboard identifies this editing session in copied envelopes.
	Clipboard ClipboardConfig `yaml:"clipboard"`

	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`
}

// ClipboardConfig is the source identity stamped on clipboard
// envelopes.
type ClipboardConfig struct {
	TemplateID string `yaml:"template_id"`
	PageID     string `yaml:"page_id"`
	PageName   string `yaml:"page_name"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Path is the log file path. Empty discards log output, keeping
	// the terminal free for the UI.
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the configuration file at path. A missing file is not an
// error; the defaults are returned. An empty path skips loading
// entirely.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if _, err := parseLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BuildKeymap returns the default keymap with this configuration's
// overrides applied. An override replaces every default binding for
// its action with the single configured chord.
func (c *Config) BuildKeymap() (*keymap.Keymap, error) {
	km := keymap.Default()
	for action, spec := range c.Keymap {
		if err := km.Rebind(keymap.Action(action), spec); err != nil {
			return nil, fmt.Errorf("config: keymap entry %q: %w", action, err)
		}
	}
	return km, nil
}

// Source returns the clipboard source identity.
func (c *Config) Source() clipboard.Source {
	return clipboard.Source{
		TemplateID: c.Clipboard.TemplateID,
		PageID:     c.Clipboard.PageID,
		PageName:   c.Clipboard.PageName,
	}
}

// BuildLogger constructs the zap logger described by the logging
// section. With no path configured the logger is a nop.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	if c.Logging.Path == "" {
		return zap.NewNop(), nil
	}
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{c.Logging.Path}
	zc.ErrorOutputPaths = []string{c.Logging.Path}
	return zc.Build()
}

// parseLevel maps a level name to a zap level. Empty means info.
func parseLevel(name string) (zapcore.Level, error) {
	switch name {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}
