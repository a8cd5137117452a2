package compat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/beautylog"
)

// createTestCompatBuilder creates a standard setup for compatibility adapter tests
func createTestCompatBuilder(t *testing.T) (*Builder, *beautylog.Logger) {
	t.Helper()
	appLogger, err := beautylog.NewBuilder().
		Name("compat").
		Directory(t.TempDir()).
		FileLevelString("debug").
		EnableConsole(false).
		FileStackTrace(true).
		SystemInfo(false).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = appLogger.Shutdown() })

	return NewBuilder().WithLogger(appLogger), appLogger
}

// readLogLines reads the file the logger currently appends to
func readLogLines(t *testing.T, l *beautylog.Logger) []string {
	t.Helper()
	require.NoError(t, l.Flush(time.Second))
	data, err := os.ReadFile(l.CurrentFile())
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// TestCompatBuilder verifies the compatibility builder can be initialized correctly
func TestCompatBuilder(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		builder, logger := createTestCompatBuilder(t)

		gnetAdapter, err := builder.BuildGnet()
		require.NoError(t, err)
		assert.Same(t, logger, gnetAdapter.logger)

		fasthttpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.Same(t, logger, fasthttpAdapter.logger)
	})

	t.Run("with config", func(t *testing.T) {
		logCfg := beautylog.DefaultConfig()
		logCfg.Directory = t.TempDir()
		logCfg.SystemInfo = false
		logCfg.EnableConsole = false

		builder := NewBuilder().WithConfig(logCfg)
		fasthttpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.NotNil(t, fasthttpAdapter)

		logger1, err := builder.GetLogger()
		require.NoError(t, err)
		defer logger1.Shutdown()

		// The created logger is cached
		logger2, err := builder.GetLogger()
		require.NoError(t, err)
		assert.Same(t, logger1, logger2)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewBuilder().WithLogger(nil).BuildGnet()
		assert.Error(t, err)
	})
}

// TestGnetAdapter tests the gnet adapter's levels, prefix and caller attribution
func TestGnetAdapter(t *testing.T) {
	builder, logger := createTestCompatBuilder(t)

	var fatalMsg string
	adapter, err := builder.BuildGnet(WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))
	require.NoError(t, err)

	adapter.Debugf("gnet debug id=%d", 1)
	adapter.Infof("gnet info id=%d", 2)
	adapter.Warnf("gnet warn id=%d", 3)
	adapter.Errorf("gnet error id=%d", 4)
	adapter.Fatalf("gnet fatal id=%d", 5)

	lines := readLogLines(t, logger)
	require.Len(t, lines, 5)

	expected := []string{
		"[DEBUG] [gnet: gnet debug id=1]",
		"[INFO ] [gnet: gnet info id=2]",
		"[WARN ] [gnet: gnet warn id=3]",
		"[ERROR] [gnet: gnet error id=4]",
		"[FATAL] [gnet: gnet fatal id=5]",
	}
	for i, line := range lines {
		assert.Contains(t, line, expected[i])
		// The descriptor names the code calling the adapter, not the adapter
		assert.Contains(t, line, "file:(compat_test.go) -> class:(github.com/lixenwraith/beautylog/compat) -> func:(TestGnetAdapter)")
	}
	assert.Equal(t, "gnet: gnet fatal id=5", fatalMsg)
}

func TestGnetAdapterPrefix(t *testing.T) {
	builder, logger := createTestCompatBuilder(t)

	adapter, err := builder.BuildGnet(WithGnetPrefix(""))
	require.NoError(t, err)
	adapter.Infof("bare %s", "message")

	lines := readLogLines(t, logger)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[INFO ] [bare message]")
}

// TestFastHTTPAdapter tests the fasthttp adapter's logging output and level detection
func TestFastHTTPAdapter(t *testing.T) {
	builder, logger := createTestCompatBuilder(t)

	adapter, err := builder.BuildFastHTTP()
	require.NoError(t, err)

	testMessages := []string{
		"this is some informational message",
		"a debug message for the developers",
		"warning: something might be wrong",
		"an error occurred while processing",
	}
	for _, msg := range testMessages {
		adapter.Printf("%s", msg)
	}

	lines := readLogLines(t, logger)
	require.Len(t, lines, 4)

	expectedLevels := []string{"[INFO ]", "[DEBUG]", "[WARN ]", "[ERROR]"}
	for i, line := range lines {
		assert.Contains(t, line, expectedLevels[i]+" [fasthttp: "+testMessages[i]+"]")
		assert.Contains(t, line, "func:(TestFastHTTPAdapter)")
	}
}

func TestFastHTTPAdapterOptions(t *testing.T) {
	builder, logger := createTestCompatBuilder(t)

	adapter, err := builder.BuildFastHTTP(
		WithDefaultLevel(beautylog.LevelWarn),
		WithLevelDetector(func(msg string) (int64, bool) {
			if strings.Contains(msg, "boom") {
				return beautylog.LevelFatal, true
			}
			return 0, false
		}),
	)
	require.NoError(t, err)

	adapter.Printf("plain")
	adapter.Printf("boom")

	lines := readLogLines(t, logger)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[WARN ] [fasthttp: plain]")
	assert.Contains(t, lines[1], "[FATAL] [fasthttp: boom]")
}

func TestDetectLogLevel(t *testing.T) {
	tests := []struct {
		msg   string
		level int64
		ok    bool
	}{
		{"request failed", beautylog.LevelError, true},
		{"PANIC recovered", beautylog.LevelError, true},
		{"deprecated header", beautylog.LevelWarn, true},
		{"trace id 7", beautylog.LevelDebug, true},
		{"served 200", 0, false},
	}
	for _, tt := range tests {
		level, ok := DetectLogLevel(tt.msg)
		assert.Equal(t, tt.ok, ok, tt.msg)
		assert.Equal(t, tt.level, level, tt.msg)
	}
}

func TestLogFilesLandInDatePartition(t *testing.T) {
	_, logger := createTestCompatBuilder(t)
	adapter := NewGnetAdapter(logger)
	adapter.Warnf("partitioned")

	path := logger.CurrentFile()
	dir := filepath.Base(filepath.Dir(path))
	assert.Len(t, dir, len("2006_01_02"))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "compat_"))
}
