package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want LogLevel
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{" warn ", LevelWarn},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"INFO", LevelInfo},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.name))
	}
}

func TestConsoleLogger_WritesMessageAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(false)
	l.SetOutput(&buf)

	l.Info("matcher installed",
		StringField("name", "toBeVisible"),
	)

	out := buf.String()
	assert.Contains(t, out, "matcher installed")
	assert.Contains(t, out, "name=toBeVisible")
	assert.Contains(t, out, "INFO")
}

func TestConsoleLogger_DebugSuppressedUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(false)
	l.SetOutput(&buf)

	l.Debug("quiet")
	assert.Empty(t, buf.String())

	verbose := NewConsoleLogger(true)
	verbose.SetOutput(&buf)
	verbose.Debug("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestJSONLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sdk.log")
	l, err := NewJSONLogger(LoggerConfig{OutputPath: path})
	require.NoError(t, err)

	l.Error("scan failed", ErrorField(assert.AnError))
	require.NoError(t, l.Close())

	data := readFile(t, path)
	var entry LogEntry
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "scan failed", entry.Message)
	assert.Contains(t, entry.Fields["error"], "assert.AnError")
}

func TestJSONLogger_LevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdk.log")
	l, err := NewJSONLogger(LoggerConfig{
		OutputPath: path,
		Level:      LevelWarn,
	})
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept")
	require.NoError(t, l.Close())

	assert.NotContains(t, string(readFile(t, path)), "dropped")
	assert.Contains(t, string(readFile(t, path)), "kept")
}

func TestJSONLogger_WithFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdk.log")
	l, err := NewJSONLogger(LoggerConfig{OutputPath: path})
	require.NoError(t, err)

	child := l.WithFields(StringField("suite", "matchers"))
	child.Info("hello")
	require.NoError(t, l.Close())

	assert.Contains(t, string(readFile(t, path)), `"suite":"matchers"`)
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	var l Logger = NullLogger{}

	l.Info("nothing")
	l.Warn("nothing")
	l.Error("nothing")
	l.Debug("nothing")
	assert.NoError(t, l.Close())
	assert.IsType(t, NullLogger{}, l.WithFields(IntField("n", 1)))
}

func TestMultiLogger_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	la := NewConsoleLogger(false)
	la.SetOutput(&a)
	lb := NewConsoleLogger(false)
	lb.SetOutput(&b)

	m := NewMultiLogger(la, lb)
	m.Warn("broadcast", BoolField("both", true))

	assert.Contains(t, a.String(), "broadcast")
	assert.Contains(t, b.String(), "broadcast")
	assert.NoError(t, m.Close())
}
