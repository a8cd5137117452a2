// FILE: utility.go
package beautylog

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes surfaced to callers
var (
	// ErrInvalidConfig is returned when a configuration is rejected at set time
	ErrInvalidConfig = errors.New("beautylog: invalid configuration")
	// ErrFileIO wraps directory creation, file creation and append failures
	ErrFileIO = errors.New("beautylog: file i/o failure")
	// ErrNotInitialized is returned by log calls before ApplyConfig succeeded
	ErrNotInitialized = errors.New("beautylog: logger not initialized")
	// ErrShutdown is returned by log calls after Shutdown
	ErrShutdown = errors.New("beautylog: logger shut down")
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
	LevelInput: "INPUT",
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "beautylog: ") {
		format = "beautylog: " + format
	}
	return fmt.Errorf(format, args...)
}

// configErrorf builds an error matching ErrInvalidConfig
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// ioErrorf builds an error matching ErrFileIO and the underlying cause
func ioErrorf(op, path string, err error) error {
	return fmt.Errorf("%w: %s '%s': %w", ErrFileIO, op, path, err)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return errors.Join(err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// Level converts level string to numeric constant.
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "input":
		return LevelInput, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use debug, info, warn, error, fatal, input)", levelStr)
	}
}

// LevelName returns the fixed display name of a level, or "" when out of range.
func LevelName(level int64) string {
	if level < LevelDebug || level > LevelInput {
		return ""
	}
	return levelNames[level]
}

// validLevel reports whether level is one of the defined constants
func validLevel(level int64) bool {
	return level >= LevelDebug && level <= LevelInput
}
