package logging

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Info emits an informational entry stamped with the caller's source
// line and file.
func (l *Service) Info(message string) {
	if !l.ready() || !l.enabled(SeverityInfo) {
		return
	}
	l.emit(SeverityInfo, callerOrigin(callSiteSkip), message)
}

// Infof is Info with fmt.Sprintf formatting.
func (l *Service) Infof(format string, args ...interface{}) {
	if !l.ready() || !l.enabled(SeverityInfo) {
		return
	}
	l.emit(SeverityInfo, callerOrigin(callSiteSkip), fmt.Sprintf(format, args...))
}

// InfoRemote emits an informational entry attributed to a remote
// identity instead of a call site. An empty username is reported as
// Unauthenticated; an empty ip falls back to the call-site form.
func (l *Service) InfoRemote(message, ip, username string) {
	if !l.ready() || !l.enabled(SeverityInfo) {
		return
	}

	origin := identityOrigin(ip, username)
	if ip == emptyString {
		origin = callerOrigin(callSiteSkip)
	}
	l.emit(SeverityInfo, origin, message)
}

// Warn emits a warning entry. The warning counter advances even when
// the threshold suppresses the printed line.
func (l *Service) Warn(message string) {
	if !l.ready() {
		return
	}
	l.warningCount.Inc()
	if !l.enabled(SeverityWarn) {
		return
	}
	l.emit(SeverityWarn, callerOrigin(callSiteSkip), message)
}

// Warnf is Warn with fmt.Sprintf formatting.
func (l *Service) Warnf(format string, args ...interface{}) {
	if !l.ready() {
		return
	}
	l.warningCount.Inc()
	if !l.enabled(SeverityWarn) {
		return
	}
	l.emit(SeverityWarn, callerOrigin(callSiteSkip), fmt.Sprintf(format, args...))
}

// Error emits an error entry regardless of the threshold and advances
// the error counter.
func (l *Service) Error(message string) {
	if !l.ready() {
		return
	}
	l.errorCount.Inc()
	l.emit(SeverityError, callerOrigin(callSiteSkip), message)
}

// Errorf is Error with fmt.Sprintf formatting.
func (l *Service) Errorf(format string, args ...interface{}) {
	if !l.ready() {
		return
	}
	l.errorCount.Inc()
	l.emit(SeverityError, callerOrigin(callSiteSkip), fmt.Sprintf(format, args...))
}

// ErrorCause emits message together with err's cause chain, outermost
// to innermost, joined by " -> ". It counts and prints like Error.
func (l *Service) ErrorCause(message string, err error) {
	if !l.ready() {
		return
	}
	l.errorCount.Inc()

	if err != nil {
		if chain := joinChain(buildErrorChain(err)); chain != emptyString {
			message = message + ": " + chain
		}
	}
	l.emit(SeverityError, callerOrigin(callSiteSkip), message)
}

// Debug emits a debugging entry when the threshold admits it.
func (l *Service) Debug(message string) {
	if !l.ready() || !l.enabled(SeverityDebug) {
		return
	}
	l.emit(SeverityDebug, callerOrigin(callSiteSkip), message)
}

// Debugf is Debug with fmt.Sprintf formatting.
func (l *Service) Debugf(format string, args ...interface{}) {
	if !l.ready() || !l.enabled(SeverityDebug) {
		return
	}
	l.emit(SeverityDebug, callerOrigin(callSiteSkip), fmt.Sprintf(format, args...))
}

// Verbose emits an entry at the most permissive severity.
func (l *Service) Verbose(message string) {
	if !l.ready() || !l.enabled(SeverityVerbose) {
		return
	}
	l.emit(SeverityVerbose, callerOrigin(callSiteSkip), message)
}

// Verbosef is Verbose with fmt.Sprintf formatting.
func (l *Service) Verbosef(format string, args ...interface{}) {
	if !l.ready() || !l.enabled(SeverityVerbose) {
		return
	}
	l.emit(SeverityVerbose, callerOrigin(callSiteSkip), fmt.Sprintf(format, args...))
}

// ready reports whether the service can emit at all. A nil or
// uninitialized service silently drops every entry.
func (l *Service) ready() bool {
	return l != nil && l.initialized.Load()
}

// enabled reports whether the threshold admits entries of severity s.
func (l *Service) enabled(s Severity) bool {
	return Severity(l.level.Load()) >= s
}

// emit writes one line of the given severity to its sink. Informational
// entries go to the info output, every other severity to the
// diagnostic output.
func (l *Service) emit(severity Severity, origin, message string) {
	sinks := l.sinks.Load()
	if sinks == nil {
		return
	}

	sink := sinks.diagnostic
	if severity == SeverityInfo {
		sink = sinks.info
	}

	sink.Log().
		Str(zerolog.LevelFieldName, severity.String()).
		Str(zerolog.TimestampFieldName, formatTimestamp(l.now())).
		Str(zerolog.CallerFieldName, origin).
		Msg(message)
}
