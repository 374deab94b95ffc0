package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/zlib"
	"github.com/sony/gobreaker/v2"

	"pulsegate/internal/config"
	"pulsegate/internal/events"
	"pulsegate/internal/types"
)

// writeTimeout bounds a single websocket write. Writes that stall longer
// indicate a dead connection; the heartbeat watchdog will tear it down.
const writeTimeout = 10 * time.Second

// maxPayloadBytes caps a single decompressed gateway payload. GUILD_CREATE
// for large guilds is the biggest frame the service sends.
const maxPayloadBytes = 16 << 20

// dialConsecutiveFailures trips the dial breaker: a gateway that refuses this
// many dials in a row is treated as down until the breaker's timeout passes.
const dialConsecutiveFailures = 3

// HeartbeatMetrics receives heartbeat round-trip telemetry.
type HeartbeatMetrics interface {
	HeartbeatAcked(latency time.Duration)
}

// Dialer opens gateway connections. Dials go through a circuit breaker so a
// flapping or unreachable gateway fails fast instead of hammering the
// endpoint on every reconnect attempt.
type Dialer struct {
	cfg       config.GatewayConfig
	token     types.SecretString
	logger    types.Logger
	clock     types.Clock
	hbMetrics HeartbeatMetrics
	breaker   *gobreaker.CircuitBreaker[*websocket.Conn]
}

// DialerOption customizes a Dialer.
type DialerOption func(*Dialer)

// WithHeartbeatMetrics wires heartbeat round-trip reporting into every
// connection the Dialer opens.
func WithHeartbeatMetrics(m HeartbeatMetrics) DialerOption {
	return func(d *Dialer) { d.hbMetrics = m }
}

// WithClock substitutes the wall clock used for latency measurement.
func WithClock(clock types.Clock) DialerOption {
	return func(d *Dialer) { d.clock = clock }
}

// NewDialer creates a Dialer for the configured gateway endpoint.
func NewDialer(cfg config.GatewayConfig, token types.SecretString, logger types.Logger, opts ...DialerOption) *Dialer {
	settings := gobreaker.Settings{
		Name:        "gateway-dial",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= dialConsecutiveFailures
		},
	}

	d := &Dialer{
		cfg:     cfg,
		token:   token,
		logger:  logger,
		clock:   types.RealClock{},
		breaker: gobreaker.NewCircuitBreaker[*websocket.Conn](settings),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dial opens a websocket to the gateway and returns a Conn ready to produce
// dispatch envelopes. The context governs the connection's lifetime: when
// it is cancelled the underlying socket closes and pending reads fail.
func (d *Dialer) Dial(ctx context.Context) (*Conn, error) {
	return d.dial(ctx, "", 0)
}

// DialResume opens a connection pre-seeded with a prior session's resume
// state: instead of identifying, the connection replays the dropped session
// from the given sequence number. Callers fall back to Dial when the server
// invalidates the session.
func (d *Dialer) DialResume(ctx context.Context, sessionID string, seq int64) (*Conn, error) {
	return d.dial(ctx, sessionID, seq)
}

func (d *Dialer) dial(ctx context.Context, sessionID string, seq int64) (*Conn, error) {
	ws, err := d.breaker.Execute(func() (*websocket.Conn, error) {
		conn, _, dialErr := websocket.DefaultDialer.DialContext(ctx, d.cfg.URL, nil)
		return conn, dialErr
	})
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeGatewayDial,
			fmt.Sprintf("failed to dial gateway %s", d.cfg.URL), err)
	}

	c := &Conn{
		id:        uuid.NewString(),
		cfg:       d.cfg,
		token:     d.token,
		clock:     d.clock,
		hbMetrics: d.hbMetrics,
		ws:        ws,
		sessionID: sessionID,
		stop:      make(chan struct{}),
	}
	c.seq.Store(seq)
	c.logger = d.logger.With("conn_id", c.id)

	// The socket has no context-aware read; closing it is how cancellation
	// reaches a blocked ReadMessage.
	go func() {
		select {
		case <-ctx.Done():
			c.Close()
		case <-c.stop:
		}
	}()

	d.logger.Info("gateway connection established",
		"conn_id", c.id,
		"url", d.cfg.URL,
	)

	return c, nil
}

// Compile-time assertion that Conn implements EnvelopeSource.
var _ EnvelopeSource = (*Conn)(nil)

// Conn is one physical gateway connection. It speaks the opcode-level
// protocol internally (hello, identify, resume, heartbeat) and surfaces only
// dispatch envelopes through Next. A Conn is not reusable after Close; the
// caller dials a fresh one to reconnect and the Conn resumes automatically
// when it holds a prior session id.
type Conn struct {
	id        string
	cfg       config.GatewayConfig
	token     types.SecretString
	logger    types.Logger
	clock     types.Clock
	hbMetrics HeartbeatMetrics

	ws      *websocket.Conn
	writeMu sync.Mutex

	seq        atomic.Int64
	acked      atomic.Bool
	identified atomic.Bool
	beatSentAt atomic.Int64 // unix nanos of the unacknowledged beat, 0 when none

	// resume state captured from the READY dispatch
	sessionMu sync.Mutex
	sessionID string

	stop     chan struct{}
	stopOnce sync.Once
}

// ID returns the connection's trace identifier used in log lines.
func (c *Conn) ID() string { return c.id }

// Seq returns the last observed server sequence number.
func (c *Conn) Seq() int64 { return c.seq.Load() }

// SessionID returns the session id captured from READY, or "" before that.
func (c *Conn) SessionID() string {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.sessionID
}

// Next blocks until the next dispatch envelope arrives. Protocol frames
// (hello, heartbeat traffic, reconnect demands) are consumed internally and
// never surface. A returned error means the connection is finished: the
// caller must treat it as session termination, not as an event-scoped
// failure.
func (c *Conn) Next(ctx context.Context) (Envelope, error) {
	for {
		select {
		case <-ctx.Done():
			return Envelope{}, ctx.Err()
		case <-c.stop:
			return Envelope{}, types.NewAppError(types.ErrCodeGatewayClosed, "connection closed", nil)
		default:
		}

		env, err := c.readEnvelope()
		if err != nil {
			c.Close()
			return Envelope{}, types.NewAppError(types.ErrCodeGatewayClosed, "gateway read failed", err)
		}

		switch env.Op {
		case OpHello:
			if err := c.handleHello(env); err != nil {
				c.Close()
				return Envelope{}, err
			}

		case OpHeartbeat:
			// The server may demand an immediate beat.
			if err := c.sendHeartbeat(); err != nil {
				c.Close()
				return Envelope{}, err
			}

		case OpHeartbeatAck:
			c.acked.Store(true)
			if sent := c.beatSentAt.Swap(0); sent > 0 && c.hbMetrics != nil {
				c.hbMetrics.HeartbeatAcked(c.clock.Now().Sub(time.Unix(0, sent)))
			}

		case OpReconnect:
			c.Close()
			return Envelope{}, types.NewAppError(types.ErrCodeGatewayClosed, "server requested reconnect", nil)

		case OpInvalidSession:
			c.clearSession()
			c.Close()
			return Envelope{}, types.NewAppError(types.ErrCodeGatewayHandshake, "session invalidated by server", nil)

		case OpDispatch:
			if env.Seq > 0 {
				c.seq.Store(env.Seq)
			}
			c.captureSession(env)
			return env, nil

		default:
			c.logger.Warn("ignoring frame with unexpected opcode", "op", int(env.Op))
		}
	}
}

// Send transmits one outbound command frame. Safe for concurrent use.
func (c *Conn) Send(ctx context.Context, cmd Command) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.stop:
		return types.NewAppError(types.ErrCodeGatewayClosed, "connection closed", nil)
	default:
	}
	return c.writeJSON(cmd)
}

// Close tears the connection down. Idempotent; pending Next calls return a
// termination error.
func (c *Conn) Close() error {
	var err error
	c.stopOnce.Do(func() {
		close(c.stop)
		c.writeMu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.writeMu.Unlock()
		err = c.ws.Close()
	})
	return err
}

// readEnvelope reads one raw frame, decompressing zlib payloads when the
// compression mode is on.
func (c *Conn) readEnvelope() (Envelope, error) {
	msgType, data, err := c.ws.ReadMessage()
	if err != nil {
		return Envelope{}, err
	}

	if msgType == websocket.BinaryMessage {
		data, err = inflate(data)
		if err != nil {
			return Envelope{}, types.NewAppError(types.ErrCodeGatewayCompression, "failed to decompress frame", err)
		}
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("readEnvelope: malformed frame: %w", err)
	}
	return env, nil
}

// inflate decompresses one self-contained zlib payload.
func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(io.LimitReader(r, maxPayloadBytes))
}

// handleHello starts the heartbeat loop and identifies (or resumes) the
// session. Identify is sent exactly once per physical connection.
func (c *Conn) handleHello(env Envelope) error {
	var hello helloData
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return types.NewAppError(types.ErrCodeGatewayHandshake, "malformed hello frame", err)
	}
	interval := time.Duration(hello.HeartbeatInterval) * time.Millisecond
	if interval <= 0 {
		return types.NewAppError(types.ErrCodeGatewayHandshake, "hello frame carries no heartbeat interval", nil)
	}

	c.acked.Store(true)
	go c.heartbeatLoop(interval)

	if !c.identified.CompareAndSwap(false, true) {
		return nil
	}

	if sessionID := c.SessionID(); sessionID != "" {
		c.logger.Info("resuming session", "session_id", sessionID, "seq", c.Seq())
		return c.writeJSON(Command{Op: OpResume, Data: resumeData{
			Token:     c.token.Unmask(),
			SessionID: sessionID,
			Seq:       c.Seq(),
		}})
	}

	c.logger.Info("identifying new session", "intents", c.cfg.Intents)
	return c.writeJSON(Command{Op: OpIdentify, Data: identifyData{
		Token:    c.token.Unmask(),
		Intents:  c.cfg.Intents,
		Compress: c.cfg.Compress,
		Properties: identifyProperties{
			OS:      runtime.GOOS,
			Browser: "pulsegate",
			Device:  "pulsegate",
		},
	}})
}

// heartbeatLoop sends a beat every interval and closes the connection if the
// previous beat was never acknowledged.
func (c *Conn) heartbeatLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			if !c.acked.Swap(false) {
				c.logger.Warn("heartbeat not acknowledged, closing connection")
				c.Close()
				return
			}
			if err := c.sendHeartbeat(); err != nil {
				c.logger.Error("heartbeat send failed", "error", err.Error())
				c.Close()
				return
			}
		}
	}
}

// sendHeartbeat transmits the current sequence number as a beat and stamps
// the send time for round-trip measurement on the matching ack.
func (c *Conn) sendHeartbeat() error {
	c.beatSentAt.Store(c.clock.Now().UnixNano())
	return c.writeJSON(Command{Op: OpHeartbeat, Data: c.seq.Load()})
}

// captureSession records resume state from the READY dispatch. Only the two
// bookkeeping fields are read here; full READY decoding belongs to the
// events package.
func (c *Conn) captureSession(env Envelope) {
	if env.Type != events.TypeReady {
		return
	}
	var p struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(env.Data, &p); err != nil || p.SessionID == "" {
		return
	}
	c.sessionMu.Lock()
	c.sessionID = p.SessionID
	c.sessionMu.Unlock()
}

// clearSession drops resume state after the server invalidates the session.
func (c *Conn) clearSession() {
	c.sessionMu.Lock()
	c.sessionID = ""
	c.sessionMu.Unlock()
}

// writeJSON marshals and writes one frame under the write lock.
func (c *Conn) writeJSON(v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("writeJSON: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.ws.WriteMessage(websocket.TextMessage, body); err != nil {
		return types.NewAppError(types.ErrCodeGatewaySend, "gateway write failed", err)
	}
	return nil
}
