package logging

// Logger is the emission surface consumers depend on. *Service
// implements it; handles may be passed through call chains without
// exposing the lifecycle methods.
type Logger interface {
	Info(message string)
	Infof(format string, args ...interface{})
	InfoRemote(message, ip, username string)
	Warn(message string)
	Warnf(format string, args ...interface{})
	Error(message string)
	Errorf(format string, args ...interface{})
	ErrorCause(message string, err error)
	Debug(message string)
	Debugf(format string, args ...interface{})
	Verbose(message string)
	Verbosef(format string, args ...interface{})
	Dump(v interface{})

	Level() Severity
	SetLevel(level Severity)
}

var _ Logger = (*Service)(nil)
