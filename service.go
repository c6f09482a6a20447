package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/atomic"
)

// Config carries the startup parameters for the logging service.
type Config struct {
	// Level selects the initial threshold by name, matched without
	// regard to case. An empty or unrecognized name falls back to info.
	Level string `validate:"omitempty,oneof=error warn info debug verbose"`

	// ProductName and ProductVersion appear in the startup banner.
	ProductName    string
	ProductVersion string

	// InfoOutput receives the banner, the shutdown report and Info
	// entries; it defaults to os.Stdout. DiagnosticOutput receives
	// error, warning, debug and verbose entries; it defaults to
	// os.Stderr.
	InfoOutput       io.Writer
	DiagnosticOutput io.Writer
}

// Service is a session-scoped console logger. It gates entries against
// a mutable severity threshold, stamps each line with a UTC timestamp
// and an origin (call site or remote identity), and tallies warnings
// and errors for the shutdown report.
//
// All state is held behind atomics, so emission is safe from any number
// of goroutines once Initialize has returned.
type Service struct {
	Config Config

	level        atomic.Int32
	errorCount   atomic.Uint64
	warningCount atomic.Uint64
	startTime    atomic.Time
	sinks        atomic.Pointer[sinkSet]
	initialized  atomic.Bool

	// clock overrides time.Now when set before Initialize.
	clock func() time.Time
}

func NewLogger() *Service {
	return &Service{}
}

// Initialize starts a logging session: the configured level name is
// resolved, both counters are reset, the start time is stamped and the
// startup banner is written to the informational output. Calling it
// again at any point starts a fresh session over the same outputs.
func (l *Service) Initialize() error {
	if l == nil {
		return errors.New(errMsgNilService)
	}

	l.Config.Level = strings.ToLower(strings.TrimSpace(l.Config.Level))
	if err := validateConfig(&l.Config); err != nil {
		l.Config.Level = defaultLevelName
	}

	threshold, err := ParseSeverity(l.Config.Level)
	if err != nil {
		threshold = SeverityInfo
	}

	l.level.Store(int32(threshold))
	l.errorCount.Store(0)
	l.warningCount.Store(0)
	l.startTime.Store(l.now().UTC())

	l.sinks.Store(l.initializeSinks())
	l.initialized.Store(true)

	l.emitBanner()
	return nil
}

// Shutdown writes the session report to the informational output. It
// does not reset counters or disable emission; the service stays usable
// until the process exits or Initialize starts a new session.
func (l *Service) Shutdown(exitCode int) {
	if !l.ready() {
		return
	}
	sinks := l.sinks.Load()
	if sinks == nil {
		return
	}

	started := l.startTime.Load()
	ended := l.now().UTC()

	out := sinks.info
	out.Log().Msg(emptyString)
	out.Log().Msg(fmt.Sprintf("Application exited with code %d", exitCode))
	out.Log().Msg(emptyString)
	out.Log().Msg("Application Started: " + formatTimestamp(started))
	out.Log().Msg("Application ended: " + formatTimestamp(ended))
	out.Log().Msg(fmt.Sprintf("Application uptime: %d Hours", uptimeHours(started, ended)))
	out.Log().Msg(fmt.Sprintf("Total Warnings: %d", l.warningCount.Load()))
	out.Log().Msg(fmt.Sprintf("Total errors: %d", l.errorCount.Load()))
	out.Log().Msg(emptyString)
}

// Level returns the current threshold.
func (l *Service) Level() Severity {
	return Severity(l.level.Load())
}

// SetLevel replaces the threshold. The value is not validated; gating
// compares plain integers, so values outside the defined scale simply
// admit more or less than usual.
func (l *Service) SetLevel(level Severity) {
	l.level.Store(int32(level))
}

// ErrorCount reports the number of error entries recorded since the
// last Initialize.
func (l *Service) ErrorCount() uint64 {
	return l.errorCount.Load()
}

// WarningCount reports the number of warning entries recorded since the
// last Initialize, including entries suppressed from output.
func (l *Service) WarningCount() uint64 {
	return l.warningCount.Load()
}

// StartTime returns the UTC instant captured by the last Initialize.
func (l *Service) StartTime() time.Time {
	return l.startTime.Load()
}

func (l *Service) emitBanner() {
	sinks := l.sinks.Load()
	if sinks == nil {
		return
	}

	startedAt := l.startTime.Load()

	out := sinks.info
	out.Log().Msg(fmt.Sprintf("%s v%s", l.Config.ProductName, l.Config.ProductVersion))
	out.Log().Msg(fmt.Sprintf("Copyright © %d", startedAt.Year()))
	out.Log().Msg(emptyString)
	out.Log().Msg("Started application at " + formatTimestamp(startedAt))
	out.Log().Msg(emptyString)
}

func (l *Service) now() time.Time {
	if l.clock != nil {
		return l.clock()
	}
	return time.Now()
}
