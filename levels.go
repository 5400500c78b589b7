package logchan

// Level is an unsigned log severity value in the range 0-65535.
// Lower values are more severe: a record is emitted only if its level is
// less than or equal to the channel's configured threshold, so raising the
// threshold makes the channel more verbose.
type Level uint16

// Severity thresholds. The named constants double as thresholds and as
// record levels: setting the channel level to LevelWarning emits warnings,
// errors and criticals, while logging a record at LevelWarning tags it
// WARNING.
const (
	// LevelNone suppresses everything. It is meant as a threshold, not as
	// a level for individual records.
	LevelNone Level = 0

	// LevelCritical admits only critical records.
	LevelCritical Level = 1

	// LevelError admits errors and worse.
	LevelError Level = 100

	// LevelWarning admits warnings and worse.
	LevelWarning Level = 1000

	// LevelInfo admits informational records and worse.
	LevelInfo Level = 10000

	// LevelDebug admits debug records and worse.
	LevelDebug Level = 50000

	// LevelAll admits every record. Like LevelNone it is a threshold,
	// not a record level.
	LevelAll Level = 65535
)

// Label returns the severity label written into the record header.
//
// The mapping is a cascade of lower-bound checks, not a range partition:
// any level >= 50000 is DEBUG, any remaining level >= 10000 is INFO, and
// so on down to CRITICAL for everything below 100. Boundary values land on
// the label of their own constant (100 is ERROR, 99 is CRITICAL).
func (l Level) Label() string {
	switch {
	case l >= LevelDebug:
		return "DEBUG"
	case l >= LevelInfo:
		return "INFO"
	case l >= LevelWarning:
		return "WARNING"
	case l >= LevelError:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return l.Label()
}
