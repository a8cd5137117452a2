// FILE: lixenwraith/beautylog/timer.go
package beautylog

import "time"

// TimerSet holds the timers used in processLogs
type TimerSet struct {
	flushTicker *time.Ticker
	flushC      <-chan time.Time // nil when immediate
	immediate   bool             // Append after every record
}

// setupProcessingTimers creates the append timer for the given period.
// A zero period appends after every record.
func (l *Logger) setupProcessingTimers(period time.Duration) *TimerSet {
	timers := &TimerSet{}

	if period <= 0 {
		timers.immediate = true
		return timers
	}

	if period < minWaitTime {
		period = minWaitTime
	}
	timers.flushTicker = time.NewTicker(period)
	timers.flushC = timers.flushTicker.C

	return timers
}

// stop releases all active timers
func (t *TimerSet) stop() {
	if t.flushTicker != nil {
		t.flushTicker.Stop()
	}
}

// stopTimeout returns the explicit timeout when given, else twice the period bounded below
func (l *Logger) stopTimeout(timeout ...time.Duration) time.Duration {
	if len(timeout) > 0 && timeout[0] > 0 {
		return timeout[0]
	}

	d := 2 * time.Duration(l.getConfig().PeriodMs) * time.Millisecond
	if d < defaultStopTimeout {
		d = defaultStopTimeout
	}
	return d
}
