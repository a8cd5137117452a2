// FILE: lixenwraith/beautylog/format.go
package beautylog

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/beautylog/sanitizer"
)

// dumper renders composite values compactly and deterministically
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// formatLine renders a record as "[<timestamp>] [<LEVEL>] [<message>]"
func formatLine(record logRecord) string {
	buf := make([]byte, 0, len(record.Message)+48)
	buf = append(buf, '[')
	buf = record.TimeStamp.AppendFormat(buf, timestampLayout)
	buf = append(buf, "] ["...)
	buf = appendPadded(buf, LevelName(record.Level), levelNameWidth)
	buf = append(buf, "] ["...)
	buf = append(buf, record.Message...)
	buf = append(buf, ']')
	return string(buf)
}

// withStack appends the stack descriptor suffix when enabled and present
func withStack(line string, stack string, enabled bool) string {
	if !enabled || stack == "" {
		return line
	}
	return line + stackSeparator + "[" + stack + "]"
}

// appendPadded appends s right-padded with spaces to width
func appendPadded(buf []byte, s string, width int) []byte {
	buf = append(buf, s...)
	for i := len(s); i < width; i++ {
		buf = append(buf, ' ')
	}
	return buf
}

// renderMessage joins args with spaces into the record message
func renderMessage(args []any, sanitize bool) string {
	var buf []byte
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	msg := string(buf)
	if sanitize {
		msg = sanitizer.New().Policy(sanitizer.PolicyTxt).Sanitize(msg)
	}
	return msg
}

// appendValue converts any value to its message representation.
// Types that are not explicitly supported fall back to go-spew.
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case int32:
		return strconv.AppendInt(buf, int64(val), 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, timestampLayout)
	case time.Duration:
		return append(buf, val.String()...)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	case []byte:
		return append(buf, val...)
	default:
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		// Collapse spew's multi-line dump to keep one record per line
		dumped := strings.Join(strings.Fields(b.String()), " ")
		return append(buf, dumped...)
	}
}
