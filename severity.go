package logging

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity classifies a log entry. Lower values are more severe:
// SeverityError sits at the bottom of the scale and SeverityVerbose at
// the top. An entry is emitted when the service threshold is greater
// than or equal to the entry's severity.
type Severity int32

const (
	SeverityError Severity = iota
	SeverityWarn
	SeverityInfo
	SeverityDebug
	SeverityVerbose
)

// AllSeverities returns every defined severity in ascending verbosity order.
func AllSeverities() []Severity {
	return []Severity{SeverityError, SeverityWarn, SeverityInfo, SeverityDebug, SeverityVerbose}
}

// String returns the upper-case token used as the line prefix for s.
// Values outside the defined range render in decimal form.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarn:
		return "WARN"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	case SeverityVerbose:
		return "VERBOSE"
	default:
		return strconv.FormatInt(int64(s), 10)
	}
}

// ParseSeverity parses a severity name into a Severity. Matching is
// case-insensitive and ignores surrounding whitespace.
// Returns SeverityInfo and an error if the name is not one of error,
// warn, info, debug or verbose.
func ParseSeverity(text string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "error":
		return SeverityError, nil
	case "warn":
		return SeverityWarn, nil
	case "info":
		return SeverityInfo, nil
	case "debug":
		return SeverityDebug, nil
	case "verbose":
		return SeverityVerbose, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity name: %q", text)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
