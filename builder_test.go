// FILE: lixenwraith/beautylog/builder_test.go
package beautylog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/beautylog/randomizer"
)

// TestBuilder_Build verifies the fluent builder API for creating and configuring a logger
func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured logger", func(t *testing.T) {
		tmpDir := t.TempDir()
		console := &syncBuffer{}

		logger, err := NewBuilder().
			Name("built").
			Directory(tmpDir).
			ConsoleLevelString("warn").
			FileLevel(LevelDebug).
			ColorMode(ColorModeNever).
			ConsoleTarget("stderr").
			Async(true).
			BufferSize(32).
			PeriodMs(0).
			MaxSizeMB(2).
			ConsoleStackTrace(true).
			FileStackTrace(false).
			Sanitize(true).
			SystemInfo(false).
			WithOptions(WithConsoleWriter(console), WithRandom(randomizer.NewSeeded(9))).
			Build()
		require.NoError(t, err)
		require.NotNil(t, logger)
		defer logger.Shutdown()

		cfg := logger.GetConfig()
		assert.Equal(t, "built", cfg.Name)
		assert.Equal(t, tmpDir, cfg.Directory)
		assert.Equal(t, LevelWarn, cfg.ConsoleLevel)
		assert.Equal(t, LevelDebug, cfg.FileLevel)
		assert.Equal(t, "stderr", cfg.ConsoleTarget)
		assert.True(t, cfg.Async)
		assert.Equal(t, int64(32), cfg.BufferSize)
		assert.Equal(t, int64(2*1024*1024), cfg.MaxSizeBytes)
		assert.True(t, cfg.Sanitize)

		// Console writer option wins over console_target
		require.NoError(t, logger.Error("to buffer"))
		require.NoError(t, logger.Flush(time.Second))
		assert.Len(t, console.Lines(), 1)
	})

	t.Run("invalid level string propagates", func(t *testing.T) {
		logger, err := NewBuilder().FileLevelString("chatty").Build()
		assert.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("validation error propagates", func(t *testing.T) {
		logger, err := NewBuilder().Directory(t.TempDir()).Extension("txt").Build()
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, logger)
	})

	t.Run("override strings", func(t *testing.T) {
		b := NewBuilder().Override("extension=.txt", "warn_color=white")
		cfg := b.Config()
		assert.Equal(t, ".txt", cfg.Extension)
		assert.Equal(t, "white", cfg.WarnColor)

		_, err := NewBuilder().Override("no_such_key=1").Build()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
