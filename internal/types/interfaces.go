package types

import "time"

// Logger defines the structured logging interface used throughout the
// project. Binaries adapt *slog.Logger to it; tests substitute fakes.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}

// Clock abstracts wall-clock reads so latency measurements can run against
// a controlled time source in tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by the time package.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
