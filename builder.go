// FILE: lixenwraith/beautylog/builder.go
package beautylog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg  *Config
	opts []Option
	err  error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger(b.opts...)

	// ApplyConfig handles all initialization and validation
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Config returns a copy of the configuration built so far
func (b *Builder) Config() *Config {
	return b.cfg.Clone()
}

// WithOptions passes construction options through to NewLogger.
func (b *Builder) WithOptions(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Name sets the file name prefix.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Directory sets the log root directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Extension sets the file suffix.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// ConsoleLevel sets the console minimum level.
func (b *Builder) ConsoleLevel(level int64) *Builder {
	b.cfg.ConsoleLevel = level
	return b
}

// ConsoleLevelString sets the console minimum level from a string.
func (b *Builder) ConsoleLevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.ConsoleLevel = levelVal
	return b
}

// FileLevel sets the file minimum level.
func (b *Builder) FileLevel(level int64) *Builder {
	b.cfg.FileLevel = level
	return b
}

// FileLevelString sets the file minimum level from a string.
func (b *Builder) FileLevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.FileLevel = levelVal
	return b
}

// EnableConsole toggles the console sink.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// EnableFile toggles the file sink.
func (b *Builder) EnableFile(enable bool) *Builder {
	b.cfg.EnableFile = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// ColorMode selects "auto", "always" or "never".
func (b *Builder) ColorMode(mode string) *Builder {
	b.cfg.ColorMode = mode
	return b
}

// Async switches between synchronous and buffered dispatch.
func (b *Builder) Async(async bool) *Builder {
	b.cfg.Async = async
	return b
}

// BufferSize sets the channel buffer size.
func (b *Builder) BufferSize(size int64) *Builder {
	b.cfg.BufferSize = size
	return b
}

// PeriodMs sets the buffered-mode append period.
func (b *Builder) PeriodMs(period int64) *Builder {
	b.cfg.PeriodMs = period
	return b
}

// MaxSizeBytes sets the rotation threshold.
func (b *Builder) MaxSizeBytes(size int64) *Builder {
	b.cfg.MaxSizeBytes = size
	return b
}

// MaxSizeMB sets the rotation threshold in MB. Convenience.
func (b *Builder) MaxSizeMB(size int64) *Builder {
	b.cfg.MaxSizeBytes = size * 1024 * 1024
	return b
}

// ConsoleStackTrace toggles the console descriptor suffix.
func (b *Builder) ConsoleStackTrace(enable bool) *Builder {
	b.cfg.ConsoleStackTrace = enable
	return b
}

// FileStackTrace toggles the file descriptor suffix.
func (b *Builder) FileStackTrace(enable bool) *Builder {
	b.cfg.FileStackTrace = enable
	return b
}

// Sanitize toggles message sanitization.
func (b *Builder) Sanitize(enable bool) *Builder {
	b.cfg.Sanitize = enable
	return b
}

// SystemInfo toggles the startup banner.
func (b *Builder) SystemInfo(enable bool) *Builder {
	b.cfg.SystemInfo = enable
	return b
}

// Override applies "key=value" settings using config key names.
func (b *Builder) Override(overrides ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = applyConfigStrings(b.cfg, overrides)
	return b
}

// Example usage:
// logger, err := beautylog.NewBuilder().
//
//	Directory("/var/log/app").
//	ConsoleLevelString("warn").
//	Async(true).
//	PeriodMs(200).
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Info("Logger initialized successfully")
//
// }
