// FILE: state.go
package beautylog

import (
	"io"
	"sync"
	"sync/atomic"
)

// State encapsulates the runtime state of the logger
type State struct {
	IsInitialized  atomic.Bool
	ShutdownCalled atomic.Bool

	flushMutex sync.Mutex // Protect concurrent Flush calls

	ConsoleWriter atomic.Value // stores *sink

	TotalLogsWritten atomic.Uint64 // Lines appended to log files
	TotalRotations   atomic.Uint64 // Size-triggered index advances

	errMu      sync.Mutex
	pendingErr error // First buffered-mode write error not yet reported
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// recordWriteError keeps the first unreported buffered-mode write error
func (s *State) recordWriteError(err error) {
	if err == nil {
		return
	}
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.pendingErr == nil {
		s.pendingErr = err
	}
}

// takeWriteError returns and clears the pending write error
func (s *State) takeWriteError() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	err := s.pendingErr
	s.pendingErr = nil
	return err
}
