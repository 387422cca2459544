package port

// Fields carries structured logging context.
type Fields map[string]interface{}

// LoggerPort abstracts the logging backend so core code never depends on a
// concrete logging library. Adapters exist for slog (tint console/JSON) and
// Fluent Bit, plus a fan-out multilogger.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)
	WithFields(fields Fields) LoggerPort
}
