package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCIHandler_AddsMetadata(t *testing.T) {
	t.Setenv("GITHUB_RUN_ID", "12345")
	t.Setenv("GITHUB_WORKFLOW", "ci")

	buf := &TestLogBuffer{}
	l := slog.New(NewCIHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.With("component", "test").Info("hello")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "12345", entries[0]["ci_run_id"])
	assert.Equal(t, "ci", entries[0]["ci_workflow"])
	assert.Equal(t, "test", entries[0]["component"])
	assert.Contains(t, entries[0], "timestamp_nano")
}

func TestCIHandler_RespectsLevel(t *testing.T) {
	buf := &TestLogBuffer{}
	h := NewCIHandler(buf, &slog.HandlerOptions{Level: slog.LevelError})

	slog.New(h).Warn("filtered")

	assert.Empty(t, buf.String())
}

func TestIsInCIEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")
	assert.False(t, isInCIEnvironment())

	t.Setenv("CI", "true")
	assert.True(t, isInCIEnvironment())
}
