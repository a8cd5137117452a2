// FILE: config.go
package beautylog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// File naming
	Name      string `toml:"name"` // Process name prefix, derived from the executable when empty
	Directory string `toml:"directory"`
	Extension string `toml:"extension"` // Suffix including the dot

	// Level thresholds
	ConsoleLevel int64 `toml:"console_level"`
	FileLevel    int64 `toml:"file_level"`

	// Outputs
	EnableConsole bool   `toml:"enable_console"` // Master console switch
	EnableFile    bool   `toml:"enable_file"`
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"
	ColorMode     string `toml:"color_mode"`     // "auto", "always" or "never"

	// Dispatch
	Async      bool  `toml:"async"`       // Buffered mode through the processor goroutine
	BufferSize int64 `toml:"buffer_size"` // Channel buffer size in buffered mode
	PeriodMs   int64 `toml:"period_ms"`   // File append period in buffered mode, 0 appends per record

	// Stack descriptors
	ConsoleStackTrace bool `toml:"console_stack_trace"`
	FileStackTrace    bool `toml:"file_stack_trace"`

	// Rotation
	MaxSizeBytes int64 `toml:"max_size_bytes"` // 0 disables size rotation

	// Misc
	Sanitize               bool `toml:"sanitize"`                  // Hex-encode non-printable message runes
	SystemInfo             bool `toml:"system_info"`               // Log process/environment banner on init
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal errors to stderr

	// Colors, background empty means unset
	DebugColor      string `toml:"debug_color"`
	DebugBackground string `toml:"debug_background"`
	InfoColor       string `toml:"info_color"`
	InfoBackground  string `toml:"info_background"`
	WarnColor       string `toml:"warn_color"`
	WarnBackground  string `toml:"warn_background"`
	ErrorColor      string `toml:"error_color"`
	ErrorBackground string `toml:"error_background"`
	FatalColor      string `toml:"fatal_color"`
	FatalBackground string `toml:"fatal_background"`
	InputColor      string `toml:"input_color"`
	InputBackground string `toml:"input_background"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Name:      "",
	Directory: "logs", // Made absolute against the working directory in DefaultConfig
	Extension: ".log",

	ConsoleLevel: LevelDebug,
	FileLevel:    LevelInfo,

	EnableConsole: true,
	EnableFile:    true,
	ConsoleTarget: "stdout",
	ColorMode:     ColorModeAuto,

	Async:      false,
	BufferSize: 1024,
	PeriodMs:   1000,

	ConsoleStackTrace: false,
	FileStackTrace:    true,

	MaxSizeBytes: 52428800,

	Sanitize:               false,
	SystemInfo:             true,
	InternalErrorsToStderr: false,

	DebugColor:      "dark_gray",
	InfoColor:       "green",
	WarnColor:       "cyan",
	ErrorColor:      "red",
	FatalColor:      "yellow",
	FatalBackground: "dark_red",
	InputColor:      "blue",
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	if wd, err := os.Getwd(); err == nil {
		copiedConfig.Directory = filepath.Join(wd, defaultConfig.Directory)
	}
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config.
// Keys are read under the "log." prefix.
func NewConfigFromFile(path string) (*Config, error) {
	return NewConfigFromFileWithPrefix(path, "log.")
}

// NewConfigFromFileWithPrefix loads configuration keys under prefix from a TOML file
func NewConfigFromFileWithPrefix(path, prefix string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct(prefix, *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	// Missing file falls back to defaults
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, prefix, cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		case float64:
			// TOML decoders may surface whole numbers as floats
			if v != float64(int64(v)) {
				return fmt.Errorf("expected integer, got %v", v)
			}
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return configErrorf("directory cannot be empty")
	}

	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return configErrorf("extension must start with a dot: '%s'", c.Extension)
	}

	if strings.ContainsAny(c.Name, `/\`) {
		return configErrorf("name cannot contain path separators: '%s'", c.Name)
	}

	if !validLevel(c.ConsoleLevel) {
		return configErrorf("console_level out of range: %d", c.ConsoleLevel)
	}
	if !validLevel(c.FileLevel) {
		return configErrorf("file_level out of range: %d", c.FileLevel)
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return configErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	switch c.ColorMode {
	case ColorModeAuto, ColorModeAlways, ColorModeNever:
	default:
		return configErrorf("invalid color_mode: '%s' (use auto, always, or never)", c.ColorMode)
	}

	if c.BufferSize <= 0 {
		return configErrorf("buffer_size must be positive: %d", c.BufferSize)
	}

	if c.MaxSizeBytes < 0 {
		return configErrorf("max_size_bytes cannot be negative: %d", c.MaxSizeBytes)
	}

	if c.PeriodMs < 0 {
		return configErrorf("period_ms cannot be negative: %d", c.PeriodMs)
	}

	for _, name := range []string{
		c.DebugColor, c.DebugBackground, c.InfoColor, c.InfoBackground,
		c.WarnColor, c.WarnBackground, c.ErrorColor, c.ErrorBackground,
		c.FatalColor, c.FatalBackground, c.InputColor, c.InputBackground,
	} {
		if _, err := ParseColor(name); err != nil {
			return configErrorf("%v", err)
		}
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// styleFor resolves the console colors of a level. Colors are validated at set time.
func (c *Config) styleFor(level int64) consoleStyle {
	var fg, bg string
	switch level {
	case LevelDebug:
		fg, bg = c.DebugColor, c.DebugBackground
	case LevelInfo:
		fg, bg = c.InfoColor, c.InfoBackground
	case LevelWarn:
		fg, bg = c.WarnColor, c.WarnBackground
	case LevelError:
		fg, bg = c.ErrorColor, c.ErrorBackground
	case LevelFatal:
		fg, bg = c.FatalColor, c.FatalBackground
	case LevelInput:
		fg, bg = c.InputColor, c.InputBackground
	}
	fgColor, _ := ParseColor(fg)
	bgColor, _ := ParseColor(bg)
	return consoleStyle{fg: fgColor, bg: bgColor}
}
