// FILE: lixenwraith/beautylog/record.go
package beautylog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// logRecord represents a single log entry, immutable once built
type logRecord struct {
	TimeStamp time.Time
	Level     int64
	Message   string
	Stack     string // Call-site descriptor, empty when not captured
}

// submit builds a record and dispatches it.
// skip is the number of frames between submit and the caller being attributed:
// 1 when called directly from a public logging method.
func (l *Logger) submit(level int64, skip int, stack CallStack, args []any) error {
	if l.state.ShutdownCalled.Load() {
		return ErrShutdown
	}
	if !l.state.IsInitialized.Load() {
		return ErrNotInitialized
	}

	cfg := l.getConfig()
	record := logRecord{
		TimeStamp: l.now(),
		Level:     level,
		Message:   renderMessage(args, cfg.Sanitize),
	}

	switch {
	case stack != nil:
		record.Stack = DescribeStack(stack, 0)
	case cfg.ConsoleStackTrace || cfg.FileStackTrace:
		// +1 skips submit itself
		record.Stack = describeCaller(CaptureStack(skip+1), 0)
	}

	return l.dispatch(cfg, record)
}

// dispatch routes a record according to the synchronous/buffered switch
func (l *Logger) dispatch(cfg *Config, record logRecord) error {
	var pending error
	if cfg.Async {
		// Errors from earlier buffered writes surface at the next call site
		pending = l.state.takeWriteError()
		if l.enqueue(cfg, record) {
			return pending
		}
		// No processor while one is being replaced, write inline
	}

	line := formatLine(record)

	l.consoleMu.Lock()
	l.writeConsole(cfg, record, line)
	l.consoleMu.Unlock()

	return combineErrors(pending, l.writeFile(cfg, record, line))
}

// enqueue hands a raw record to the processor, blocking while the buffer is full.
// It reports false when no processor is running.
func (l *Logger) enqueue(cfg *Config, record logRecord) bool {
	l.procMu.RLock()
	defer l.procMu.RUnlock()

	if l.proc == nil {
		return false
	}
	l.proc.ch <- queuedRecord{cfg: cfg, record: record}
	return true
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	if !strings.HasPrefix(format, "beautylog: ") {
		format = "beautylog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
