package core

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for the most detailed diagnostic messages
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for abnormal or unexpected events
	WarnLevel
	// ErrorLevel for failures of the current operation
	ErrorLevel
	// CriticalLevel for failures that require immediate attention
	CriticalLevel
	// NoneLevel disables logging when used as a minimum level
	NoneLevel
)

var levelNames = [...]string{
	TraceLevel:    "TRACE",
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarnLevel:     "WARN",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
	NoneLevel:     "NONE",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= NoneLevel
}
