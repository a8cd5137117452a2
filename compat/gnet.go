// FILE: lixenwraith/beautylog/compat/gnet.go
package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/beautylog"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps beautylog.Logger to implement gnet logging.Logger interface
type GnetAdapter struct {
	logger       *beautylog.Logger
	prefix       string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *beautylog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		prefix: "gnet:",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetPrefix sets the tag placed before every message, empty to disable
func WithGnetPrefix(prefix string) GnetOption {
	return func(a *GnetAdapter) {
		a.prefix = prefix
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	_ = a.logger.DebugStack(beautylog.CaptureStack(1), a.message(format, args))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	_ = a.logger.InfoStack(beautylog.CaptureStack(1), a.message(format, args))
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	_ = a.logger.WarnStack(beautylog.CaptureStack(1), a.message(format, args))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	_ = a.logger.ErrorStack(beautylog.CaptureStack(1), a.message(format, args))
}

// Fatalf logs at fatal level and triggers fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := a.message(format, args)
	_ = a.logger.FatalStack(beautylog.CaptureStack(1), msg)

	// Ensure log is flushed before exit
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// message renders the printf-style text with the adapter prefix
func (a *GnetAdapter) message(format string, args []any) string {
	msg := fmt.Sprintf(format, args...)
	if a.prefix == "" {
		return msg
	}
	return a.prefix + " " + msg
}
