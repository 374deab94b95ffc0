// Package main is the entrypoint for the event-tail binary.
//
// event-tail connects to the realtime gateway, decodes every dispatched
// event, and prints one formatted line per event to stdout. It is the
// reference consumer of the ingestion pipeline and exercises the full
// stack:
//
//	Startup (main):
//	 1. Initialize structured logger.
//	 2. Load configuration (env + dotenv, validated).
//	 3. Initialize Prometheus collector and ops endpoint.
//	 4. Open the relay line that serializes handler output.
//	 5. Dial the gateway and run the dispatch session, reconnecting
//	    (with resume when the server permits it) until shutdown.
//
// SIGINT/SIGTERM cancels the root context; the session loop, the relay
// consumer, and the ops listener all shut down cooperatively.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pulsegate/internal/config"
	"pulsegate/internal/events"
	"pulsegate/internal/gateway"
	"pulsegate/internal/metrics"
	"pulsegate/internal/ops"
	"pulsegate/internal/relay"
	"pulsegate/internal/types"
)

// reconnect backoff bounds. The dial circuit breaker already guards the
// endpoint; this backoff only spaces out session restarts.
const (
	reconnectMinDelay = time.Second
	reconnectMaxDelay = 30 * time.Second
)

// slogAdapter wraps *slog.Logger to implement the types.Logger interface.
// slog.Logger satisfies Info, Error, and Warn directly, but With returns
// *slog.Logger rather than types.Logger, so an adapter is necessary.
type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Info(msg string, args ...any)  { a.logger.Info(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.logger.Warn(msg, args...) }
func (a *slogAdapter) With(args ...any) types.Logger {
	return &slogAdapter{logger: a.logger.With(args...)}
}

// Compile-time assertion that slogAdapter implements types.Logger.
var _ types.Logger = (*slogAdapter)(nil)

// parseLogLevel maps the configured level name onto slog's leveler.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// sessionProbe reports the gateway session's liveness to the ops endpoint.
type sessionProbe struct {
	connected *atomic.Bool
}

func (p *sessionProbe) Name() string  { return "gateway_session" }
func (p *sessionProbe) Healthy() bool { return p.connected.Load() }

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// Config failures happen before the logger level is known; report
		// with a default logger and exit.
		slog.Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	typedLogger := &slogAdapter{logger: logger}

	typedLogger.Info("event-tail starting",
		"environment", cfg.Environment,
		"version", cfg.Build.Version,
		"commit", cfg.Build.Commit,
		"gateway_url", cfg.Gateway.URL,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, typedLogger); err != nil {
		typedLogger.Error("event-tail terminated", "error", err.Error())
		os.Exit(1)
	}

	typedLogger.Info("event-tail stopped")
}

// run wires the pipeline and blocks until the context is cancelled or a
// component fails unrecoverably.
func run(ctx context.Context, cfg *config.Config, logger types.Logger) error {
	collector := metrics.NewCollector()

	var connected atomic.Bool
	opsServer := ops.NewServer(cfg.Ops, logger, &sessionProbe{connected: &connected})

	line := relay.NewLine[string](cfg.Dispatch.RelayBuffer)

	g, ctx := errgroup.WithContext(ctx)

	// Ops endpoint: /healthz and /metrics.
	g.Go(func() error {
		return opsServer.Run(ctx)
	})

	// Single consumer: every formatted event reaches stdout as one intact
	// line, in enqueue order.
	g.Go(func() error {
		out := bufio.NewWriter(os.Stdout)
		err := line.Run(ctx, func(entry string) {
			fmt.Fprintln(out, entry)
			out.Flush()
		})
		out.Flush()
		return err
	})

	// Gateway session with reconnect.
	g.Go(func() error {
		defer line.Close()
		return runSessions(ctx, cfg, logger, collector, line, &connected)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runSessions dials the gateway and runs dispatch sessions until the context
// is cancelled. When a session drops, the next dial resumes it if the server
// still honors the session id; otherwise a fresh identify happens.
func runSessions(
	ctx context.Context,
	cfg *config.Config,
	logger types.Logger,
	collector *metrics.Collector,
	line *relay.Line[string],
	connected *atomic.Bool,
) error {
	dialer := gateway.NewDialer(cfg.Gateway, cfg.Gateway.Token, logger,
		gateway.WithHeartbeatMetrics(collector))

	handler := func(ev events.Event) {
		if err := line.Enqueue(ctx, formatLine(ev)); err != nil {
			logger.Warn("dropping event line", "event_type", ev.EventType(), "error", err.Error())
		}
	}

	opts := []gateway.Option{
		gateway.WithMetrics(collector),
		gateway.WithReadyHook(func(_ context.Context, ready events.Ready, _ *gateway.Session) error {
			logger.Info("session ready",
				"user_id", ready.User.ID.String(),
				"session_id", ready.SessionID,
				"guild_count", len(ready.Guilds),
			)
			return nil
		}),
	}
	if cfg.Dispatch.MaxConcurrency > 0 {
		opts = append(opts, gateway.WithMaxConcurrency(cfg.Dispatch.MaxConcurrency))
	}

	var (
		sessionID string
		seq       int64
		delay     = reconnectMinDelay
	)

	for {
		conn, err := dialConn(ctx, dialer, sessionID, seq)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Warn("gateway dial failed", "error", err.Error(), "retry_in", delay.String())
			if !sleepCtx(ctx, delay) {
				return nil
			}
			delay = nextDelay(delay)
			continue
		}
		delay = reconnectMinDelay

		session := gateway.NewSession(conn, handler, logger, opts...)
		connected.Store(true)
		runErr := session.Run(ctx)
		connected.Store(false)

		// Capture resume state before discarding the connection. The conn
		// clears its session id when the server invalidated it, which makes
		// the next attempt a fresh identify.
		sessionID, seq = conn.SessionID(), conn.Seq()
		_ = conn.Close()

		if ctx.Err() != nil {
			return nil
		}

		logger.Warn("gateway session dropped, reconnecting",
			"error", errString(runErr),
			"resume", sessionID != "",
			"seq", seq,
		)
		if !sleepCtx(ctx, delay) {
			return nil
		}
		delay = nextDelay(delay)
	}
}

// dialConn resumes when prior session state exists, otherwise identifies.
func dialConn(ctx context.Context, dialer *gateway.Dialer, sessionID string, seq int64) (*gateway.Conn, error) {
	if sessionID != "" {
		return dialer.DialResume(ctx, sessionID, seq)
	}
	return dialer.Dial(ctx)
}

// sleepCtx waits for the delay or context cancellation, whichever is first.
// It reports false when the context ended the wait.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// nextDelay doubles the backoff up to the cap.
func nextDelay(d time.Duration) time.Duration {
	d *= 2
	if d > reconnectMaxDelay {
		return reconnectMaxDelay
	}
	return d
}

func errString(err error) string {
	if err == nil {
		return "none"
	}
	return err.Error()
}
