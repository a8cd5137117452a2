// FILE: lixenwraith/beautylog/default.go
package beautylog

import (
	"sync"
	"time"
)

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// std returns the process-wide logger, created on first use
func std() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = NewLogger()
	})
	return defaultLogger
}

// Default returns the logger behind the package-level functions
func Default() *Logger {
	return std()
}

// Init configures the package-level logger
func Init(cfg *Config) error {
	return std().ApplyConfig(cfg)
}

// InitWithDefaults configures the package-level logger from built-in defaults and "key=value" overrides
func InitWithDefaults(overrides ...string) error {
	cfg := DefaultConfig()
	if err := applyConfigStrings(cfg, overrides); err != nil {
		return err
	}

	return std().ApplyConfig(cfg)
}

// Shutdown stops the package-level logger
func Shutdown(timeout ...time.Duration) error {
	return std().Shutdown(timeout...)
}

// Flush appends buffered records of the package-level logger
func Flush(timeout time.Duration) error {
	return std().Flush(timeout)
}

// Debug logs a message at debug level
func Debug(args ...any) error {
	return std().submit(LevelDebug, 1, nil, args)
}

// Info logs a message at info level
func Info(args ...any) error {
	return std().submit(LevelInfo, 1, nil, args)
}

// Warn logs a message at warning level
func Warn(args ...any) error {
	return std().submit(LevelWarn, 1, nil, args)
}

// Error logs a message at error level
func Error(args ...any) error {
	return std().submit(LevelError, 1, nil, args)
}

// Fatal logs a message at fatal level without exiting
func Fatal(args ...any) error {
	return std().submit(LevelFatal, 1, nil, args)
}

// Input echoes user input
func Input(args ...any) error {
	return std().submit(LevelInput, 1, nil, args)
}

// DebugStack logs at debug level with an explicit stack
func DebugStack(stack CallStack, args ...any) error {
	return std().submit(LevelDebug, 1, stack, args)
}

// InfoStack logs at info level with an explicit stack
func InfoStack(stack CallStack, args ...any) error {
	return std().submit(LevelInfo, 1, stack, args)
}

// WarnStack logs at warning level with an explicit stack
func WarnStack(stack CallStack, args ...any) error {
	return std().submit(LevelWarn, 1, stack, args)
}

// ErrorStack logs at error level with an explicit stack
func ErrorStack(stack CallStack, args ...any) error {
	return std().submit(LevelError, 1, stack, args)
}

// FatalStack logs at fatal level with an explicit stack
func FatalStack(stack CallStack, args ...any) error {
	return std().submit(LevelFatal, 1, stack, args)
}

// InputStack logs at input level with an explicit stack
func InputStack(stack CallStack, args ...any) error {
	return std().submit(LevelInput, 1, stack, args)
}
