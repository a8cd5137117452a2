// FILE: lixenwraith/beautylog/logger.go
package beautylog

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/beautylog/randomizer"
)

// Logger is the core struct that encapsulates all logger functionality
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	initMu        sync.Mutex

	consoleMu sync.Mutex // Serializes console writes in both modes
	fileMu    sync.Mutex // Guards rotation and file appends
	rotation  rotationState

	procMu sync.RWMutex // Guards proc; held for reading while enqueuing
	proc   *processor

	random      randomizer.Generator
	sessionID   string
	defaultName string
	now         func() time.Time
	console     io.Writer // Overrides console_target when set
}

// Option customizes a Logger at construction
type Option func(*Logger)

// WithRandom sets the generator used for the session id
func WithRandom(g randomizer.Generator) Option {
	return func(l *Logger) {
		if g != nil {
			l.random = g
		}
	}
}

// WithClock sets the time source used for record timestamps
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithConsoleWriter replaces stdout/stderr as the console sink target
func WithConsoleWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.console = w
	}
}

// NewLogger creates a new Logger instance with default settings.
// The logger accepts records once ApplyConfig succeeds.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{
		random:      randomizer.Default,
		now:         time.Now,
		defaultName: executableName(),
	}

	for _, opt := range opts {
		opt(l)
	}

	// Session id is fixed for the logger lifetime
	l.sessionID = strconv.Itoa(randomizer.Between(l.random, sessionIDMin, sessionIDMax))

	l.currentConfig.Store(DefaultConfig())
	l.state.ConsoleWriter.Store(&sink{w: io.Discard})

	return l
}

// ApplyConfig validates and applies a configuration to the logger.
// This is the primary way applications should configure the logger.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg.Clone())
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// SessionID returns the 3-digit tag embedded in this logger's file names
func (l *Logger) SessionID() string {
	return l.sessionID
}

// CurrentFile returns the path of the file the next record is appended to, "" before the first write
func (l *Logger) CurrentFile() string {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()
	return l.rotation.currentPath
}

// Shutdown stops buffered processing, appends pending records and reports
// any write error not yet surfaced. If no timeout is provided, twice the period is used.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	if !l.state.IsInitialized.Load() {
		l.state.ShutdownCalled.Store(false)
		return nil
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	var finalErr error
	if err := l.stopProcessor(l.stopTimeout(timeout...)); err != nil {
		finalErr = combineErrors(finalErr, err)
	}

	l.state.IsInitialized.Store(false)

	return combineErrors(finalErr, l.state.takeWriteError())
}

// Flush appends all buffered records to their files and waits for completion or timeout.
// In synchronous mode every record is already on disk and Flush only reports pending errors.
func (l *Logger) Flush(timeout time.Duration) error {
	l.state.flushMutex.Lock()
	defer l.state.flushMutex.Unlock()

	if l.state.ShutdownCalled.Load() {
		return ErrShutdown
	}
	if !l.state.IsInitialized.Load() {
		return ErrNotInitialized
	}

	l.procMu.RLock()
	p := l.proc
	l.procMu.RUnlock()
	if p == nil {
		return l.state.takeWriteError()
	}

	confirmChan := make(chan error, 1)

	select {
	case p.flushReq <- confirmChan:
	case <-p.done:
		return l.state.takeWriteError()
	case <-time.After(timeout):
		return fmtErrorf("failed to send flush request to processor within %v", timeout)
	}

	select {
	case err := <-confirmChan:
		return combineErrors(err, l.state.takeWriteError())
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// Debug logs a message at debug level
func (l *Logger) Debug(args ...any) error {
	return l.submit(LevelDebug, 1, nil, args)
}

// Info logs a message at info level
func (l *Logger) Info(args ...any) error {
	return l.submit(LevelInfo, 1, nil, args)
}

// Warn logs a message at warning level
func (l *Logger) Warn(args ...any) error {
	return l.submit(LevelWarn, 1, nil, args)
}

// Error logs a message at error level
func (l *Logger) Error(args ...any) error {
	return l.submit(LevelError, 1, nil, args)
}

// Fatal logs a message at fatal level. It does not exit the process.
func (l *Logger) Fatal(args ...any) error {
	return l.submit(LevelFatal, 1, nil, args)
}

// Input echoes user input at input level
func (l *Logger) Input(args ...any) error {
	return l.submit(LevelInput, 1, nil, args)
}

// DebugStack logs at debug level, describing frame 0 of an explicitly captured stack
func (l *Logger) DebugStack(stack CallStack, args ...any) error {
	return l.submit(LevelDebug, 1, stack, args)
}

// InfoStack logs at info level with an explicit stack
func (l *Logger) InfoStack(stack CallStack, args ...any) error {
	return l.submit(LevelInfo, 1, stack, args)
}

// WarnStack logs at warning level with an explicit stack
func (l *Logger) WarnStack(stack CallStack, args ...any) error {
	return l.submit(LevelWarn, 1, stack, args)
}

// ErrorStack logs at error level with an explicit stack
func (l *Logger) ErrorStack(stack CallStack, args ...any) error {
	return l.submit(LevelError, 1, stack, args)
}

// FatalStack logs at fatal level with an explicit stack
func (l *Logger) FatalStack(stack CallStack, args ...any) error {
	return l.submit(LevelFatal, 1, stack, args)
}

// InputStack logs at input level with an explicit stack
func (l *Logger) InputStack(stack CallStack, args ...any) error {
	return l.submit(LevelInput, 1, stack, args)
}

// Log writes a record at an arbitrary level
func (l *Logger) Log(level int64, args ...any) error {
	if !validLevel(level) {
		return fmtErrorf("invalid level: %d", level)
	}
	return l.submit(level, 1, nil, args)
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// applyConfig is the internal implementation for applying configuration, assuming initMu is held
func (l *Logger) applyConfig(cfg *Config) error {
	oldCfg := l.getConfig()
	wasInitialized := l.state.IsInitialized.Load()

	// Processor settings are fixed for a processor's lifetime
	if !cfg.Async || oldCfg.BufferSize != cfg.BufferSize || oldCfg.PeriodMs != cfg.PeriodMs {
		if err := l.stopProcessor(l.stopTimeout()); err != nil {
			return fmtErrorf("failed to stop processor for reconfiguration: %w", err)
		}
	}

	if cfg.EnableFile {
		if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
			return ioErrorf("create log directory", cfg.Directory, err)
		}
	}

	l.currentConfig.Store(cfg)

	// File naming changed, start over from NoFile
	if oldCfg.Directory != cfg.Directory || oldCfg.Name != cfg.Name || oldCfg.Extension != cfg.Extension {
		l.fileMu.Lock()
		l.rotation.reset("")
		l.fileMu.Unlock()
	}

	var writer io.Writer
	switch {
	case l.console != nil:
		writer = l.console
	case cfg.ConsoleTarget == "stderr":
		writer = os.Stderr
	default:
		writer = os.Stdout
	}
	l.state.ConsoleWriter.Store(&sink{w: writer})

	l.state.IsInitialized.Store(true)
	l.state.ShutdownCalled.Store(false)

	if cfg.Async {
		l.startProcessor(cfg)
	}

	if !wasInitialized && cfg.SystemInfo {
		return l.logSystemInfo()
	}
	return nil
}

// getConsoleWriter returns the active console target
func (l *Logger) getConsoleWriter() io.Writer {
	return l.state.ConsoleWriter.Load().(*sink).w
}

// processName returns the file name prefix
func (l *Logger) processName(cfg *Config) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return l.defaultName
}

// executableName derives a lowercase process name from the running binary
func executableName() string {
	path, err := os.Executable()
	if err != nil || path == "" {
		if len(os.Args) == 0 {
			return "process"
		}
		path = os.Args[0]
	}
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." {
		return "process"
	}
	return strings.ToLower(name)
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
