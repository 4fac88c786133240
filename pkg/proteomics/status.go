package proteomics

import "log/slog"

// Level is the severity of a status message.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Reporter receives the progress and status signals of a workflow. It only
// consumes signals and never feeds anything back.
type Reporter interface {
	// SetProgress takes a percentage in [0, 100].
	SetProgress(percent float64)
	ShowStatus(level Level, message string)
	// SetTriggerEnabled enables or disables the control that starts an export.
	SetTriggerEnabled(enabled bool)
}

// NopReporter drops every signal.
type NopReporter struct{}

func (NopReporter) SetProgress(float64)      {}
func (NopReporter) ShowStatus(Level, string) {}
func (NopReporter) SetTriggerEnabled(bool)   {}

// LogReporter writes every signal to a slog.Logger, slog.Default when nil.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func (r LogReporter) SetProgress(percent float64) {
	r.logger().Debug("progress", "percent", percent)
}

func (r LogReporter) ShowStatus(level Level, message string) {
	switch level {
	case LevelError:
		r.logger().Error(message)
	default:
		r.logger().Info(message, "level", string(level))
	}
}

func (r LogReporter) SetTriggerEnabled(enabled bool) {
	r.logger().Debug("trigger", "enabled", enabled)
}
