package core

// Logger is implemented by the logging service (see services/logger).
// args may carry errors or arbitrary context values; implementations decide
// how to render and where to ship them.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
