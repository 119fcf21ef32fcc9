package util

// Pointer simply returns a pointer to the supplied value
func Pointer[T any](v T) *T {
	return &v
}

// VerboseToLevel maps CLI verbosity 1 (error) .. 5 (trace) onto a LogLevel.
// Out of range values are clamped.
func VerboseToLevel(verbose int) LogLevel {
	verbose = min(max(verbose, 1), 5)
	lvls := [5]LogLevel{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}
	return lvls[verbose-1]
}
