package beautylog

import (
	"io"
	"strings"
)

// writeConsole emits a formatted line to the console sink. Caller holds consoleMu.
// Write failures are reported internally and never fail the log call.
func (l *Logger) writeConsole(cfg *Config, record logRecord, line string) {
	if record.Level < cfg.ConsoleLevel {
		return
	}

	if !cfg.EnableConsole {
		return
	}

	style := cfg.styleFor(record.Level)
	w := l.getConsoleWriter()
	text := withStack(line, record.Stack, cfg.ConsoleStackTrace)

	var sb strings.Builder
	sb.Grow(len(text) + 16)
	if seq := style.sequence(); seq != "" && useColor(cfg.ColorMode, w) {
		sb.WriteString(seq)
		sb.WriteString(text)
		sb.WriteString(ansiReset)
	} else {
		sb.WriteString(text)
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		l.internalLog("console write failed: %v\n", err)
	}
}

// useColor decides whether escape codes are written to w
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default:
		return isTerminal(w)
	}
}
