// FILE: lixenwraith/beautylog/processor.go
package beautylog

import (
	"time"
)

// processor owns the buffered-mode queue and its goroutine
type processor struct {
	ch       chan queuedRecord
	flushReq chan chan error
	done     chan struct{}
}

// queuedRecord pairs a raw record with the configuration it was submitted under
type queuedRecord struct {
	cfg    *Config
	record logRecord
}

// startProcessor launches the buffered-mode goroutine if none is running
func (l *Logger) startProcessor(cfg *Config) {
	l.procMu.Lock()
	defer l.procMu.Unlock()

	if l.proc != nil {
		return
	}

	p := &processor{
		ch:       make(chan queuedRecord, cfg.BufferSize),
		flushReq: make(chan chan error),
		done:     make(chan struct{}),
	}
	l.proc = p

	go l.processLogs(p, time.Duration(cfg.PeriodMs)*time.Millisecond)
}

// stopProcessor closes the queue and waits for the goroutine to append what remains
func (l *Logger) stopProcessor(timeout time.Duration) error {
	l.procMu.Lock()
	p := l.proc
	l.proc = nil
	if p != nil {
		// Write lock excludes in-flight enqueues, so closing is safe
		close(p.ch)
	}
	l.procMu.Unlock()

	if p == nil {
		return nil
	}

	select {
	case <-p.done:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("processor did not stop within %v", timeout)
	}
}

// processLogs is the main buffered-mode loop running in a separate goroutine.
// Console output happens per record; file appends are batched per period.
func (l *Logger) processLogs(p *processor, period time.Duration) {
	defer close(p.done)

	timers := l.setupProcessingTimers(period)
	defer timers.stop()

	var pending []fileEntry

	appendPending := func() error {
		err := l.appendBatch(pending)
		pending = pending[:0]
		return err
	}

	for {
		select {
		case queued, ok := <-p.ch:
			if !ok {
				l.state.recordWriteError(appendPending())
				return
			}
			pending = l.emitBuffered(queued, pending)
			if timers.immediate {
				l.state.recordWriteError(appendPending())
			}

		case <-timers.flushC:
			l.state.recordWriteError(appendPending())

		case confirmChan := <-p.flushReq:
			closed := false
		drain:
			for {
				select {
				case queued, ok := <-p.ch:
					if !ok {
						closed = true
						break drain
					}
					pending = l.emitBuffered(queued, pending)
				default:
					break drain
				}
			}
			confirmChan <- appendPending()
			if closed {
				return
			}
		}
	}
}

// emitBuffered formats a record, writes the console line and queues the file line
// under the configuration the record was submitted with
func (l *Logger) emitBuffered(queued queuedRecord, pending []fileEntry) []fileEntry {
	cfg, record := queued.cfg, queued.record
	line := formatLine(record)

	l.consoleMu.Lock()
	l.writeConsole(cfg, record, line)
	l.consoleMu.Unlock()

	if !cfg.EnableFile {
		return pending
	}
	return append(pending, fileEntry{cfg: cfg, record: record, line: line})
}
