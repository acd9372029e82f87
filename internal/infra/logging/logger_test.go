package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasktable/internal/domain"
)

func readLog(t *testing.T, stateDir string) string {
	t.Helper()
	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	return string(content)
}

func TestLogger_WritesToLogFile(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("7", "rowstore", "task created")
	logger.Info("", "rowstore", "loaded 3 tasks")

	content := readLog(t, stateDir)
	assert.Contains(t, content, "[task-7] [rowstore] task created")
	assert.Contains(t, content, "[global] [rowstore] loaded 3 tasks")
}

func TestLogger_LevelFiltering(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("1", "rowstore", "debug message")
	logger.Info("1", "rowstore", "info message")
	logger.Warn("1", "rowstore", "warn message")
	logger.Error("1", "rowstore", "error message")

	content := readLog(t, stateDir)
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, "warn message")
	assert.Contains(t, content, "error message")
}

func TestLogger_DisabledWhenEmptyStateDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic or create anything.
	logger.Info("1", "rowstore", "test message")
	logger.Error("1", "rowstore", "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.Local) }
	defer func() { _ = logger.Close() }()

	logger.Error("42", "httpapi", `DELETE /tasks/42: status 500`)

	lines := strings.Split(strings.TrimSpace(readLog(t, stateDir)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, `[2025-12-30 09:32:51] [ERROR] [task-42] [httpapi] DELETE /tasks/42: status 500`, lines[0])
}

func TestLogger_Close(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)

	logger.Info("1", "rowstore", "test message")

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close(), "second close is a no-op")
	assert.FileExists(t, domain.LogPath(stateDir))
}

func TestLogger_CreateLogsDir(t *testing.T) {
	stateDir := t.TempDir()
	logsDir := filepath.Join(stateDir, "logs")

	_, err := os.Stat(logsDir)
	assert.True(t, os.IsNotExist(err))

	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("1", "rowstore", "test message")

	stat, err := os.Stat(logsDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestDefaultStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	assert.Equal(t, filepath.Join("/tmp/state", "tasktable"), DefaultStateDir())
}
