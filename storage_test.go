// FILE: lixenwraith/beautylog/storage_test.go
package beautylog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNaming(t *testing.T) {
	env := createTestLogger(t)
	sid := env.logger.SessionID()

	require.NoError(t, env.logger.Info("first"))

	want := filepath.Join(env.dir, "2024_03_15", fmt.Sprintf("test_10_0_%s.log", sid))
	assert.Equal(t, want, env.logger.CurrentFile())
	assert.Equal(t, []string{fmt.Sprintf("2024_03_15/test_10_0_%s.log", sid)}, env.logFiles(t))
}

func TestRotationBySize(t *testing.T) {
	env := createTestLogger(t, func(c *Config) {
		c.MaxSizeBytes = 100
	})
	sid := env.logger.SessionID()

	// Each line is 41 bytes including the newline
	for i := 1; i <= 4; i++ {
		require.NoError(t, env.logger.Info(fmt.Sprintf("rec%d", i)))
	}

	first := fmt.Sprintf("2024_03_15/test_10_0_%s.log", sid)
	second := fmt.Sprintf("2024_03_15/test_10_1_%s.log", sid)
	assert.Equal(t, []string{first, second}, env.logFiles(t))

	firstLines := env.readLines(t, first)
	require.Len(t, firstLines, 3)
	assert.Len(t, firstLines[0]+"\n", 41)
	assert.Equal(t, []string{"[2024/03/15 10:30:00.123] [INFO ] [rec4]"}, env.readLines(t, second))

	// The rotated file never exceeds threshold plus one record
	info, err := os.Stat(filepath.Join(env.dir, filepath.FromSlash(first)))
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(100+41))

	assert.Equal(t, uint64(1), env.logger.state.TotalRotations.Load())
	assert.Equal(t, uint64(4), env.logger.state.TotalLogsWritten.Load())
}

func TestRotationDisabledAtZero(t *testing.T) {
	env := createTestLogger(t, func(c *Config) {
		c.MaxSizeBytes = 0
	})

	for i := 0; i < 20; i++ {
		require.NoError(t, env.logger.Info("no rotation"))
	}

	files := env.logFiles(t)
	require.Len(t, files, 1)
	assert.Len(t, env.readLines(t, files[0]), 20)
}

func TestDateRolloverResetsIndex(t *testing.T) {
	env := createTestLogger(t, func(c *Config) {
		c.MaxSizeBytes = 50
	})
	sid := env.logger.SessionID()

	// Two records push day one to index 1
	require.NoError(t, env.logger.Info("day one a"))
	require.NoError(t, env.logger.Info("day one b"))
	require.NoError(t, env.logger.Info("day one c"))
	assert.Contains(t, env.logger.CurrentFile(), "test_10_1_")

	env.clock.Set(time.Date(2024, 3, 16, 10, 5, 0, 0, time.Local))
	require.NoError(t, env.logger.Info("day two"))

	want := filepath.Join(env.dir, "2024_03_16", fmt.Sprintf("test_10_0_%s.log", sid))
	assert.Equal(t, want, env.logger.CurrentFile())

	files := env.logFiles(t)
	assert.Contains(t, files, fmt.Sprintf("2024_03_16/test_10_0_%s.log", sid))
	assert.Equal(t, []string{"[2024/03/16 10:05:00.000] [INFO ] [day two]"},
		env.readLines(t, fmt.Sprintf("2024_03_16/test_10_0_%s.log", sid)))
}

func TestHourChangeResetsIndex(t *testing.T) {
	env := createTestLogger(t, func(c *Config) {
		c.MaxSizeBytes = 10
	})
	sid := env.logger.SessionID()

	require.NoError(t, env.logger.Info("a"))
	require.NoError(t, env.logger.Info("b"))
	assert.Contains(t, env.logger.CurrentFile(), "test_10_1_")

	env.clock.Set(time.Date(2024, 3, 15, 11, 0, 0, 0, time.Local))
	require.NoError(t, env.logger.Info("c"))

	want := filepath.Join(env.dir, "2024_03_15", fmt.Sprintf("test_11_0_%s.log", sid))
	assert.Equal(t, want, env.logger.CurrentFile())
}

func TestVanishedFileResetsIndex(t *testing.T) {
	env := createTestLogger(t, func(c *Config) {
		c.MaxSizeBytes = 10
	})

	require.NoError(t, env.logger.Info("a"))
	require.NoError(t, env.logger.Info("b"))
	current := env.logger.CurrentFile()
	require.Contains(t, current, "test_10_1_")

	require.NoError(t, os.Remove(current))
	require.NoError(t, env.logger.Info("c"))

	// Index 0 is over threshold, so the fresh scan lands on index 1 again
	assert.Equal(t, current, env.logger.CurrentFile())
	assert.Equal(t, []string{"[2024/03/15 10:30:00.123] [INFO ] [c]"},
		env.readLines(t, strings.TrimPrefix(filepath.ToSlash(current), filepath.ToSlash(env.dir)+"/")))
}

func TestExistingFilesAreAppendedNotTruncated(t *testing.T) {
	env := createTestLogger(t)
	require.NoError(t, env.logger.Info("one"))
	path := env.logger.CurrentFile()

	// A new logger with the same session id continues the same file
	cfg := env.logger.GetConfig()
	require.NoError(t, env.logger.Shutdown())

	other := NewLogger(WithClock(env.clock.Now), WithConsoleWriter(env.console))
	other.sessionID = env.logger.SessionID()
	require.NoError(t, other.ApplyConfig(cfg))
	defer other.Shutdown()

	require.NoError(t, other.Info("two"))
	assert.Equal(t, path, other.CurrentFile())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2024/03/15 10:30:00.123] [INFO ] [one]\n[2024/03/15 10:30:00.123] [INFO ] [two]\n", string(data))
}

func TestDirectoryCreationIsIdempotent(t *testing.T) {
	env := createTestLogger(t)
	nested := filepath.Join(env.dir, "a", "b")

	cfg := env.logger.GetConfig()
	cfg.Directory = nested
	require.NoError(t, env.logger.ApplyConfig(cfg))
	require.NoError(t, env.logger.ApplyConfig(cfg))

	require.NoError(t, env.logger.Info("x"))
	require.NoError(t, env.logger.Info("y"))

	info, err := os.Stat(filepath.Join(nested, "2024_03_15"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, strings.HasPrefix(env.logger.CurrentFile(), nested))
}

func TestFileLineRoundTrip(t *testing.T) {
	env := createTestLogger(t, func(c *Config) {
		c.FileStackTrace = true
	})

	stack := CallStack{}
	require.NoError(t, env.logger.WarnStack(stack, "no frames"))
	require.NoError(t, env.logger.Warn("with frames"))

	data, err := os.ReadFile(env.logger.CurrentFile())
	require.NoError(t, err)

	want := "[2024/03/15 10:30:00.123] [WARN ] [no frames]\n" +
		"[2024/03/15 10:30:00.123] [WARN ] [with frames] ---> [class:(" + pkgPath + ") -> func:(TestFileLineRoundTrip)]\n"
	assert.Equal(t, want, string(data))
}

func TestFileErrorsSurfaceAtCallSite(t *testing.T) {
	env := createTestLogger(t)

	// A regular file where the date directory belongs
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "2024_03_15"), []byte("x"), 0644))

	err := env.logger.Error("cannot land")
	assert.ErrorIs(t, err, ErrFileIO)

	// Console output is unaffected by file failures
	assert.Equal(t, []string{"[2024/03/15 10:30:00.123] [ERROR] [cannot land]"}, env.console.Lines())

	// Records below the file threshold still prepare the directory
	assert.ErrorIs(t, env.logger.Debug("console only"), ErrFileIO)
}

func TestBelowThresholdPreparesFileWithoutAppending(t *testing.T) {
	env := createTestLogger(t, func(c *Config) {
		c.FileLevel = LevelError
	})

	require.NoError(t, env.logger.Info("console only"))

	sid := env.logger.SessionID()
	want := filepath.Join(env.dir, "2024_03_15", fmt.Sprintf("test_10_0_%s.log", sid))
	assert.Equal(t, want, env.logger.CurrentFile())
	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.Zero(t, env.logger.state.TotalLogsWritten.Load())

	require.NoError(t, env.logger.Error("in file"))
	assert.Equal(t, []string{"[2024/03/15 10:30:00.123] [ERROR] [in file]"}, env.readLines(t, "2024_03_15/"+filepath.Base(want)))
}

func TestConcurrentRotationLosesNothing(t *testing.T) {
	env := createTestLogger(t, func(c *Config) {
		c.MaxSizeBytes = 200
	})

	const goroutines, perG = 6, 40
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				assert.NoError(t, env.logger.Info("payload"))
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, f := range env.logFiles(t) {
		lines := env.readLines(t, f)
		assert.NotEmpty(t, lines, "no empty files are left behind: %s", f)
		total += len(lines)

		info, err := os.Stat(filepath.Join(env.dir, filepath.FromSlash(f)))
		require.NoError(t, err)
		line := int64(len("[2024/03/15 10:30:00.123] [INFO ] [payload]\n"))
		assert.LessOrEqual(t, info.Size(), 200+line)
	}
	assert.Equal(t, goroutines*perG, total)
}
