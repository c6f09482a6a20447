// Package logging provides a session-scoped, concurrency-safe console
// logger over rs/zerolog: severity-gated plain-text lines with UTC
// timestamps, call-site or remote-identity attribution, and warning and
// error tallies reported at shutdown.
//
// Key features
//   - Five severities (error, warn, info, debug, verbose) gated by a
//     mutable threshold; error entries always print, and warnings are
//     counted even when the threshold suppresses them
//   - Every line is stamped "LEVEL: <ISO-8601 UTC> - <origin>: <message>",
//     with the origin taken from the caller's source line and file, or
//     from a username@ip identity for remote activity
//   - Two outputs: informational entries (banner, Info, shutdown report)
//     and diagnostics (everything else), stdout and stderr by default
//   - Initialize prints a product banner and resets the session; Shutdown
//     reports exit code, uptime in whole hours and the two tallies
//   - Error cause chains via ErrorCause and value dumps via Dump
//
// Typical usage
//
//	svc := logging.NewLogger()
//	svc.Config = logging.Config{Level: "debug", ProductName: "stationd", ProductVersion: "1.4.2"}
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Shutdown(0)
//
//	svc.Info("cache warmed")
//	svc.InfoRemote("login accepted", "10.0.0.1", "alice")
//	svc.Warnf("slow response: %s", elapsed)
package logging
