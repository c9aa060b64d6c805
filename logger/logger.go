// Package logger defines the structured-logging surface the gate, the
// analytics service and the HTTP layer write to. Implementations must be safe
// for concurrent use.
package logger

// Fields carries the structured context of a single entry.
type Fields = map[string]any

type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

// NoopLogger drops every entry. It is the default wherever no logger is
// injected.
type NoopLogger struct{}

func (NoopLogger) Debug(string, Fields) {}
func (NoopLogger) Info(string, Fields)  {}
func (NoopLogger) Warn(string, Fields)  {}
func (NoopLogger) Error(string, Fields) {}
