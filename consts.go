package logging

const (
	emptyString = ""

	// unauthenticatedUser is substituted when an identity-mode entry
	// carries no username.
	unauthenticatedUser = "Unauthenticated"

	// timestampLayout renders UTC wall-clock time as ISO-8601 with
	// millisecond precision and a literal Z designator.
	timestampLayout = "2006-01-02T15:04:05.000Z"

	// defaultLevelName is the threshold applied when the configured
	// level is empty or unrecognized.
	defaultLevelName = "info"
)

const (
	errMsgNilService = "Logger service is nil."
)
