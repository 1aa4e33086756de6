package logger

// Tee fans every message out to all given loggers. Nil entries are
// skipped, so optional destinations can be passed unconditionally.
type Tee []Logger

// NewTee builds a Tee from the non-nil loggers.
func NewTee(loggers ...Logger) Tee {
	var tee Tee
	for _, l := range loggers {
		if l != nil {
			tee = append(tee, l)
		}
	}
	return tee
}

// LogTrace forwards a trace-level message to every logger.
func (t Tee) LogTrace(message string) {
	for _, l := range t {
		l.LogTrace(message)
	}
}

// LogDebug forwards a debug-level message to every logger.
func (t Tee) LogDebug(message string) {
	for _, l := range t {
		l.LogDebug(message)
	}
}

// LogInfo forwards an info-level message to every logger.
func (t Tee) LogInfo(message string) {
	for _, l := range t {
		l.LogInfo(message)
	}
}

// LogWarn forwards a warn-level message to every logger.
func (t Tee) LogWarn(message string) {
	for _, l := range t {
		l.LogWarn(message)
	}
}

// LogError forwards an error-level message to every logger.
func (t Tee) LogError(message string) {
	for _, l := range t {
		l.LogError(message)
	}
}
