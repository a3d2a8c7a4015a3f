package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Makepad-fr/shoplist/internal/config"
)

func TestInteractiveWithoutFileIsNop(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "debug"}, false, true)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestLevel(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "warn"}, false, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = New(config.LoggingConfig{Level: "warn"}, true, false)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, false, false)
	assert.Error(t, err)
}

func TestFileOutput(t *testing.T) {
	p := filepath.Join(t.TempDir(), "shoplist.log")
	l, err := New(config.LoggingConfig{Level: "info", File: p}, false, true)
	require.NoError(t, err)

	l.Info("saved", zap.Int("items", 3))
	_ = l.Sync()

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	line := strings.TrimSpace(string(b))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "saved", entry["msg"])
	assert.Equal(t, "shoplist", entry["logger"])
	assert.EqualValues(t, 3, entry["items"])
}
