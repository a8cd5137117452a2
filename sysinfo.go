// FILE: lixenwraith/beautylog/sysinfo.go
package beautylog

import (
	"os"
	"os/user"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

// logSystemInfo writes the process/environment banner as a single INFO record
func (l *Logger) logSystemInfo() error {
	cfg := l.getConfig()
	record := logRecord{
		TimeStamp: l.now(),
		Level:     LevelInfo,
		Message:   l.systemInfo(cfg),
	}
	return l.dispatch(cfg, record)
}

// systemInfo collects process and host facts, degrading to "unknown" per field
func (l *Logger) systemInfo(cfg *Config) string {
	version := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "unknown"
	}

	userName := "unknown"
	if u, err := user.Current(); err == nil {
		userName = u.Username
	} else {
		l.internalLog("warning - failed to resolve current user: %v\n", err)
	}

	fields := [][2]string{
		{"process", l.processName(cfg)},
		{"version", version},
		{"go", runtime.Version()},
		{"path", cwd},
		{"sys", runtime.GOOS + "/" + runtime.GOARCH},
		{"user", userName},
		{"cores", strconv.Itoa(runtime.NumCPU())},
	}

	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(f[0])
		sb.WriteByte(':')
		sb.WriteString(f[1])
	}
	return sb.String()
}
