package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	// OutputPath is the log file destination. Empty means
	// stdout.
	OutputPath string

	// Level is the minimum level to emit.
	Level LogLevel

	// Fields are default fields attached to every entry.
	Fields map[string]any
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	mu     sync.Mutex
	output io.Writer
	level  LogLevel
	fields map[string]any
	closed bool
}

// NewJSONLogger creates a new JSON logger. If OutputPath is
// empty, logs are written to stdout.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	logger := &JSONLogger{
		level:  config.Level,
		fields: config.Fields,
	}

	if logger.fields == nil {
		logger.fields = make(map[string]any)
	}

	if config.OutputPath != "" {
		dir := filepath.Dir(config.OutputPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf(
				"failed to create log directory: %w", err,
			)
		}
		file, err := os.OpenFile(
			config.OutputPath,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open log file: %w", err,
			)
		}
		logger.output = file
	} else {
		logger.output = os.Stdout
	}

	return logger, nil
}

func (j *JSONLogger) write(
	level LogLevel, msg string, fields ...Field,
) {
	if level < j.level {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return
	}

	merged := make(map[string]any, len(j.fields)+len(fields))
	for k, v := range j.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    merged,
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}
	fmt.Fprintln(j.output, string(data))
}

// Info logs an informational message.
func (j *JSONLogger) Info(msg string, fields ...Field) {
	j.write(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (j *JSONLogger) Warn(msg string, fields ...Field) {
	j.write(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (j *JSONLogger) Error(msg string, fields ...Field) {
	j.write(LevelError, msg, fields...)
}

// Debug logs a debug-level message.
func (j *JSONLogger) Debug(msg string, fields ...Field) {
	j.write(LevelDebug, msg, fields...)
}

// WithFields returns a new Logger with additional default
// fields.
func (j *JSONLogger) WithFields(fields ...Field) Logger {
	j.mu.Lock()
	defer j.mu.Unlock()

	newFields := make(map[string]any, len(j.fields)+len(fields))
	for k, v := range j.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}

	return &JSONLogger{
		output: j.output,
		level:  j.level,
		fields: newFields,
	}
}

// Close marks the logger closed and closes the underlying file
// if one was opened.
func (j *JSONLogger) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}
	j.closed = true

	if closer, ok := j.output.(io.Closer); ok {
		if closer != os.Stdout {
			return closer.Close()
		}
	}
	return nil
}
