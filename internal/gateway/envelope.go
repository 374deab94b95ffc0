// Package gateway maintains the persistent connection to the realtime
// service and drives event dispatch.
//
// Conn owns the transport: websocket framing, zlib decompression, the
// opcode-level protocol (hello, identify, heartbeat, resume). Session owns
// ingestion: it pulls dispatch envelopes from a Conn (or any
// EnvelopeSource), decodes them through the events package, and fans each
// decoded event out to the user handler.
package gateway

import "encoding/json"

// Opcode identifies the protocol-level meaning of a gateway frame.
type Opcode int

const (
	// OpDispatch carries one named event notification (server -> client).
	OpDispatch Opcode = 0
	// OpHeartbeat is the keepalive beat (bidirectional).
	OpHeartbeat Opcode = 1
	// OpIdentify opens a new session (client -> server).
	OpIdentify Opcode = 2
	// OpPresenceUpdate announces the client's presence (client -> server).
	OpPresenceUpdate Opcode = 3
	// OpResume replays a dropped session (client -> server).
	OpResume Opcode = 6
	// OpReconnect instructs the client to reconnect (server -> client).
	OpReconnect Opcode = 7
	// OpRequestGuildMembers asks for member chunks (client -> server).
	OpRequestGuildMembers Opcode = 8
	// OpInvalidSession rejects an identify or resume (server -> client).
	OpInvalidSession Opcode = 9
	// OpHello delivers the heartbeat interval on connect (server -> client).
	OpHello Opcode = 10
	// OpHeartbeatAck acknowledges a client heartbeat (server -> client).
	OpHeartbeatAck Opcode = 11
)

// Envelope is the two-part notification frame delivered per gateway message:
// for dispatch frames, Type holds the event name and Data the raw payload.
// Seq is the server-assigned sequence number used for heartbeats and resume.
type Envelope struct {
	Op   Opcode          `json:"op"`
	Data json.RawMessage `json:"d,omitempty"`
	Seq  int64           `json:"s,omitempty"`
	Type string          `json:"t,omitempty"`
}

// Command is an outbound frame sent to the service. The payload is opaque to
// the dispatch layer; the ready hook may issue commands before general
// dispatch begins.
type Command struct {
	Op   Opcode `json:"op"`
	Data any    `json:"d"`
}

// identifyProperties describes the connecting client inside the identify
// payload.
type identifyProperties struct {
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Device  string `json:"device"`
}

// identifyData is the payload of OpIdentify.
type identifyData struct {
	Token      string             `json:"token"`
	Intents    int                `json:"intents"`
	Compress   bool               `json:"compress"`
	Properties identifyProperties `json:"properties"`
}

// resumeData is the payload of OpResume.
type resumeData struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Seq       int64  `json:"seq"`
}

// helloData is the payload of OpHello.
type helloData struct {
	HeartbeatInterval int64 `json:"heartbeat_interval"` // milliseconds
}
