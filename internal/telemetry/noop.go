package telemetry

import "time"

// NoOpLogger is a no-op implementation of Logger, used when telemetry is disabled.
type NoOpLogger struct{}

// Interval always returns zero.
func (NoOpLogger) Interval() time.Duration {
	return 0
}

// Close does nothing and returns nil.
func (NoOpLogger) Close() error {
	return nil
}
