// FILE: lixenwraith/beautylog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/beautylog"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter wraps beautylog.Logger to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	logger        *beautylog.Logger
	defaultLevel  int64
	levelDetector func(string) (int64, bool) // Reports a level when the message carries a hint
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *beautylog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  beautylog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when no hint is detected
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) (int64, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := "fasthttp: " + fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}

	stack := beautylog.CaptureStack(1)
	switch level {
	case beautylog.LevelDebug:
		_ = a.logger.DebugStack(stack, msg)
	case beautylog.LevelWarn:
		_ = a.logger.WarnStack(stack, msg)
	case beautylog.LevelError:
		_ = a.logger.ErrorStack(stack, msg)
	case beautylog.LevelFatal:
		_ = a.logger.FatalStack(stack, msg)
	default:
		_ = a.logger.InfoStack(stack, msg)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) (int64, bool) {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return beautylog.LevelError, true
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return beautylog.LevelWarn, true
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return beautylog.LevelDebug, true
	}

	return 0, false
}
