package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		_, _, err := New("loud", "")
		assert.Error(t, err)
	})

	t.Run("stderr logger", func(t *testing.T) {
		logger, closer, err := New("debug", "")
		require.NoError(t, err)
		defer closer()

		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("file logger creates parent dirs and appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "app.log")

		logger, closer, err := New("info", path)
		require.NoError(t, err)

		logger.Info().Msg("first")
		closer()

		logger, closer, err = New("info", path)
		require.NoError(t, err)
		logger.Info().Msg("second")
		closer()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "first")
		assert.Contains(t, string(data), "second")
	})
}
