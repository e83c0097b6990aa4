package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("development defaults to debug", func(t *testing.T) {
		l, err := New(false, "")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("production defaults to info", func(t *testing.T) {
		l, err := New(true, "")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.DebugLevel))
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
	})

	t.Run("explicit level wins", func(t *testing.T) {
		l, err := New(false, "warn")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.InfoLevel))
	})

	t.Run("unknown level is ignored", func(t *testing.T) {
		l, err := New(true, "loud")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
	})
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
