package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cgrc/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLoggerWithOptions(Options{Verbosity: tt.verbosity, LogFile: true, Writer: &bytes.Buffer{}})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "cgrc", "cgrc.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	var buf bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 1, Writer: &buf})

	log.Info().Msg("hello from test")

	assert.Contains(t, buf.String(), "hello from test")
	_, err := os.Stat(filepath.Join(tempDir, "cgrc", "cgrc.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestSetupLoggerDefaultPathFollowsXDGState(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	SetupLoggerWithOptions(Options{LogFile: true, Writer: &bytes.Buffer{}})

	assert.FileExists(t, paths.New().LogFilePath())
	assert.FileExists(t, filepath.Join(tempDir, "cgrc", "cgrc.log"))
}

func TestSetupLoggerExplicitLogPath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "run.log")

	SetupLoggerWithOptions(Options{Verbosity: 1, LogFile: true, LogPath: logPath, Writer: &bytes.Buffer{}})
	log.Info().Msg("to the file")

	data, err := os.ReadFile(logPath)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "to the file")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("colorizer")
	logger.Info().Msg("component message")

	assert.Contains(t, buf.String(), `"component":"colorizer"`)
	assert.Contains(t, buf.String(), "component message")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "parse")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"parse"`)
	assert.Contains(t, out, "duration")
}
