package logger

// Logger defines the leveled logging interface shared by the service,
// the astrometry engines and the CLI handlers.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
