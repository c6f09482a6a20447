package logging

import (
	"errors"
	"math"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// callSiteSkip resolves the frame that invoked the public logging
// operation when passed to callerOrigin from inside that operation.
const callSiteSkip = 1

// callerOrigin reports the call site skip frames above its caller,
// formatted as "line@file" where file is the source file base name.
// Returns "0@unknown" when the frame cannot be resolved.
func callerOrigin(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "0@unknown"
	}
	return strconv.Itoa(line) + "@" + filepath.Base(file)
}

// identityOrigin formats an identity-mode origin as "username@ip".
// An empty username is reported as Unauthenticated.
func identityOrigin(ip, username string) string {
	if username == emptyString {
		username = unauthenticatedUser
	}
	return username + "@" + ip
}

// formatTimestamp renders t in the ISO-8601 millisecond form used on
// every logged line, always in UTC with a literal Z designator.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

const millisecondsPerHour = 3600000

// uptimeHours returns the elapsed wall-clock time between start and end
// in whole hours, rounded half away from zero.
func uptimeHours(start, end time.Time) int64 {
	elapsed := end.Sub(start).Milliseconds()
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return int64(math.Round(float64(elapsed) / millisecondsPerHour))
}

// buildErrorChain walks an error's cause chain and returns the messages
// outermost -> innermost. It unwraps via stdlib errors.Unwrap and guards
// against excessive depth and repeated messages to avoid cycles.
func buildErrorChain(err error) []string {
	const maxDepth = 50
	visited := 0
	seen := map[string]bool{}

	var chain []string
	for err != nil && visited < maxDepth {
		visited++

		msg := err.Error()
		// avoid infinite loops if messages repeat due to unusual cycles
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = errors.Unwrap(err)
	}

	return chain
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return ""
	}
	return strings.Join(chain, " -> ")
}
