// FILE: lixenwraith/beautylog/constant.go
package beautylog

import (
	"time"
)

// Log level constants, totally ordered for threshold comparisons
const (
	LevelDebug int64 = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelInput // user input echo, ordered after fatal for filtering only
)

// Record line layout
const (
	// Timestamp layout with millisecond precision
	timestampLayout = "2006/01/02 15:04:05.000"
	// Width level names are padded to
	levelNameWidth = 5
	// Separator between a formatted line and its stack descriptor
	stackSeparator = " ---> "
)

// File layout
const (
	// Date partition directory layout
	datePartitionLayout = "2006_01_02"
	// Hour component embedded in file names
	hourLayout = "15"
	// Session id bounds, inclusive
	sessionIDMin = 100
	sessionIDMax = 999
)

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
	// Shutdown wait when no timeout is supplied and period is zero
	defaultStopTimeout = time.Second
)
