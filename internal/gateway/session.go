package gateway

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"pulsegate/internal/events"
	"pulsegate/internal/types"
)

// EnvelopeSource is the inbound boundary from the connection layer: a
// blocking stream of dispatch envelopes in network arrival order, plus the
// outbound command path. Conn is the production implementation; tests
// substitute fakes.
type EnvelopeSource interface {
	// Next blocks until the next dispatch envelope. An error means the
	// connection terminated; no further envelopes will arrive.
	Next(ctx context.Context) (Envelope, error)

	// Send transmits an outbound command frame.
	Send(ctx context.Context, cmd Command) error

	// Close tears the connection down.
	Close() error
}

// Handler is the application callback invoked once per successfully decoded
// event. Invocations may run concurrently with each other; a panic inside a
// handler is contained per invocation and never reaches the dispatch loop.
type Handler func(ev events.Event)

// ReadyHook runs exactly once when the session first becomes ready, before
// any event is dispatched to the handler. It may issue outbound commands
// through the session.
type ReadyHook func(ctx context.Context, ready events.Ready, s *Session) error

// CloseHook runs exactly once when the session ends. The error is the
// connection fault that terminated the loop, or nil after a clean context
// cancellation.
type CloseHook func(err error)

// Metrics is the narrow telemetry interface the dispatch loop records into.
type Metrics interface {
	EventReceived(eventType string)
	DecodeFailed(eventType string)
	UnknownEvent(eventType string)
	HandlerPanicked(eventType string)
	HandlerStarted()
	HandlerFinished()
}

// nopMetrics is used when no collector is wired in.
type nopMetrics struct{}

func (nopMetrics) EventReceived(string)   {}
func (nopMetrics) DecodeFailed(string)    {}
func (nopMetrics) UnknownEvent(string)    {}
func (nopMetrics) HandlerPanicked(string) {}
func (nopMetrics) HandlerStarted()        {}
func (nopMetrics) HandlerFinished()       {}

// State is the session lifecycle phase.
type State int32

const (
	// StateConnecting means no READY has been observed yet.
	StateConnecting State = iota
	// StateReady means READY arrived and the ready hook is running.
	StateReady
	// StateRunning means events are being dispatched to the handler.
	StateRunning
	// StateEnded means the loop terminated; no further dispatches occur.
	StateEnded
)

// String returns the lowercase phase name used in log lines.
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Option customizes a Session.
type Option func(*Session)

// WithReadyHook sets the start-up hook.
func WithReadyHook(hook ReadyHook) Option {
	return func(s *Session) { s.readyHook = hook }
}

// WithCloseHook sets the end-of-session hook.
func WithCloseHook(hook CloseHook) Option {
	return func(s *Session) { s.closeHook = hook }
}

// WithMetrics wires a telemetry collector into the loop.
func WithMetrics(m Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithMaxConcurrency caps the number of handler invocations running at once.
// Zero (the default) means unbounded fan-out, matching the upstream model;
// the cap exists for deployments where event bursts must not translate into
// unbounded goroutine growth.
func WithMaxConcurrency(n int64) Option {
	return func(s *Session) {
		if n > 0 {
			s.sem = semaphore.NewWeighted(n)
		}
	}
}

// Session is the dispatch loop: it pulls envelopes from the source, decodes
// them, and launches one handler goroutine per decoded event. The loop
// itself runs on the goroutine that calls Run.
type Session struct {
	id      string
	src     EnvelopeSource
	handler Handler
	logger  types.Logger
	metrics Metrics

	readyHook ReadyHook
	closeHook CloseHook
	sem       *semaphore.Weighted

	state    atomic.Int32
	handlers sync.WaitGroup
}

// NewSession creates a Session over the given source and handler.
func NewSession(src EnvelopeSource, handler Handler, logger types.Logger, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		src:     src,
		handler: handler,
		metrics: nopMetrics{},
	}
	s.logger = logger.With("session_id", s.id)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session's trace identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Send forwards an outbound command to the connection layer. Used by the
// ready hook and by handlers issuing commands.
func (s *Session) Send(ctx context.Context, cmd Command) error {
	if s.State() == StateEnded {
		return types.NewAppError(types.ErrCodeSessionEnded, "session has ended", nil)
	}
	return s.src.Send(ctx, cmd)
}

// Run drives the session until the connection terminates or the context is
// cancelled. It blocks the calling goroutine; decoded events are dispatched
// on their own goroutines in arrival order (launch order is arrival order,
// completion order is not guaranteed).
//
// On return the session is Ended: in-flight handlers have been waited for,
// the close hook has run exactly once, and the returned error is the
// connection fault (nil for clean cancellation).
func (s *Session) Run(ctx context.Context) error {
	var cause error

	for {
		env, err := s.src.Next(ctx)
		if err != nil {
			if ctx.Err() == nil {
				cause = err
			}
			break
		}

		s.dispatch(ctx, env)
	}

	s.state.Store(int32(StateEnded))

	// Already-running invocations are not cancelled; the loop waits for
	// them so the close hook observes a quiet session.
	s.handlers.Wait()

	if cause != nil {
		s.logger.Warn("session ended", "error", cause.Error())
	} else {
		s.logger.Info("session ended")
	}

	if s.closeHook != nil {
		s.closeHook(cause)
	}

	return cause
}

// dispatch decodes one envelope and launches the handler invocation. Decode
// failures are event-scoped: they are logged, counted, and skipped without
// stopping the loop.
func (s *Session) dispatch(ctx context.Context, env Envelope) {
	ev, err := events.Decode(env.Type, env.Data)
	if err != nil {
		s.metrics.DecodeFailed(env.Type)
		s.logger.Error("dropping event that failed to decode",
			"event_type", env.Type,
			"seq", env.Seq,
			"error", err.Error(),
		)
		return
	}

	s.metrics.EventReceived(env.Type)
	if _, unknown := ev.(events.Unknown); unknown {
		s.metrics.UnknownEvent(env.Type)
	}

	// First READY: run the start-up hook synchronously so it can issue
	// commands before any event reaches the handler.
	if ready, ok := ev.(events.Ready); ok && s.State() == StateConnecting {
		s.state.Store(int32(StateReady))
		if s.readyHook != nil {
			if err := s.readyHook(ctx, ready, s); err != nil {
				s.logger.Error("ready hook failed", "error", err.Error())
			}
		}
		s.state.Store(int32(StateRunning))
	}

	if s.State() == StateEnded {
		return
	}

	if s.sem != nil {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return
		}
	}

	s.handlers.Add(1)
	go s.invoke(ev)
}

// invoke runs one handler invocation with panic containment. A handler fault
// is the application's failure: it is logged and counted, and it never
// propagates into the dispatch loop or other in-flight invocations.
func (s *Session) invoke(ev events.Event) {
	defer s.handlers.Done()
	if s.sem != nil {
		defer s.sem.Release(1)
	}

	s.metrics.HandlerStarted()
	defer s.metrics.HandlerFinished()

	defer func() {
		if r := recover(); r != nil {
			s.metrics.HandlerPanicked(ev.EventType())
			s.logger.Error("handler panicked",
				"event_type", ev.EventType(),
				"panic", r,
			)
		}
	}()

	s.handler(ev)
}
