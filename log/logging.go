package log

import "code.cloudfoundry.org/lager"

// NewLogger returns a logger writing to sink at DEBUG when debug is set and a
// NullLogger otherwise.
func NewLogger(component string, debug bool, sink lager.Sink) lager.Logger {
	if !debug {
		return NewNullLogger()
	}

	logger := lager.NewLogger(component)
	logger.RegisterSink(sink)

	return logger
}
