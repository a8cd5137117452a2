// FILE: lixenwraith/beautylog/format_test.go
package beautylog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLine(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)

	tests := []struct {
		level int64
		want  string
	}{
		{LevelDebug, "[2024/01/02 03:04:05.006] [DEBUG] [hello]"},
		{LevelInfo, "[2024/01/02 03:04:05.006] [INFO ] [hello]"},
		{LevelWarn, "[2024/01/02 03:04:05.006] [WARN ] [hello]"},
		{LevelError, "[2024/01/02 03:04:05.006] [ERROR] [hello]"},
		{LevelFatal, "[2024/01/02 03:04:05.006] [FATAL] [hello]"},
		{LevelInput, "[2024/01/02 03:04:05.006] [INPUT] [hello]"},
	}

	for _, tt := range tests {
		t.Run(LevelName(tt.level), func(t *testing.T) {
			record := logRecord{TimeStamp: ts, Level: tt.level, Message: "hello"}
			assert.Equal(t, tt.want, formatLine(record))
			// Deterministic for identical input
			assert.Equal(t, formatLine(record), formatLine(record))
		})
	}

	t.Run("empty message", func(t *testing.T) {
		record := logRecord{TimeStamp: ts, Level: LevelInfo}
		assert.Equal(t, "[2024/01/02 03:04:05.006] [INFO ] []", formatLine(record))
	})

	t.Run("stack is not part of the base line", func(t *testing.T) {
		record := logRecord{TimeStamp: ts, Level: LevelInfo, Message: "m", Stack: "class:(x) -> func:(y)"}
		assert.Equal(t, "[2024/01/02 03:04:05.006] [INFO ] [m]", formatLine(record))
	})
}

func TestWithStack(t *testing.T) {
	line := "[2024/01/02 03:04:05.006] [INFO ] [m]"

	assert.Equal(t, line+" ---> [class:(x) -> func:(y)]", withStack(line, "class:(x) -> func:(y)", true))
	assert.Equal(t, line, withStack(line, "class:(x) -> func:(y)", false))
	assert.Equal(t, line, withStack(line, "", true), "empty descriptor omits the suffix")
}

type stringerValue struct{}

func (stringerValue) String() string { return "stringer" }

type composite struct {
	Name  string
	Count int
}

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"strings joined with spaces", []any{"a", "b", "c"}, "a b c"},
		{"numbers", []any{1, int64(-2), uint(3), 1.5, float32(0.25)}, "1 -2 3 1.5 0.25"},
		{"bool and nil", []any{true, nil}, "true nil"},
		{"error", []any{errors.New("boom")}, "boom"},
		{"stringer", []any{stringerValue{}}, "stringer"},
		{"bytes", []any{[]byte("raw")}, "raw"},
		{"duration", []any{1500 * time.Millisecond}, "1.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderMessage(tt.args, false))
		})
	}

	t.Run("composite values stay on one line", func(t *testing.T) {
		msg := renderMessage([]any{composite{Name: "n", Count: 2}, map[string]int{"b": 2, "a": 1}}, false)
		assert.NotContains(t, msg, "\n")
		assert.Contains(t, msg, "Name: (string) (len=1) \"n\"")
		assert.Contains(t, msg, "Count: (int) 2")
		// Map keys are sorted
		assert.Less(t, strings.Index(msg, `"a"`), strings.Index(msg, `"b"`))
	})

	t.Run("sanitize encodes control characters", func(t *testing.T) {
		assert.Equal(t, "line1<0a>line2", renderMessage([]any{"line1\nline2"}, true))
		assert.Equal(t, "line1\nline2", renderMessage([]any{"line1\nline2"}, false))
	})
}
