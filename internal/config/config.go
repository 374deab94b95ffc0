// Package config defines the global configuration structure for pulsegate.
// Configuration is loaded once at process initialization and is immutable
// thereafter. It follows 12-Factor App principles by strictly separating
// code from configuration.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File (Lowest)
//
// Any missing required value or invalid format fails the process immediately
// on startup.
package config

import (
	"pulsegate/internal/types"
)

// SecretString is an alias for types.SecretString, the redacted secret type
// used to keep the bot token out of logs and config dumps.
type SecretString = types.SecretString

// Config is the top-level configuration struct. It is populated once during
// process initialization and never modified. Sub-components receive only the
// specific subsets they require.
type Config struct {
	// System metadata
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"pulsegate"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Domain configurations
	Gateway  GatewayConfig
	Dispatch DispatchConfig
	Ops      OpsConfig

	// Build metadata (injected via ldflags, not env)
	Build BuildInfo
}

// GatewayConfig holds the connection parameters for the realtime gateway.
type GatewayConfig struct {
	// Token authenticates the identify payload. Redacted in all output.
	Token SecretString `envconfig:"GATEWAY_TOKEN" validate:"required"`

	// URL is the websocket endpoint to dial.
	URL string `envconfig:"GATEWAY_URL" default:"wss://gateway.discord.gg/?v=10&encoding=json" validate:"required,url"`

	// Intents is the event-subscription bitmask sent with identify.
	Intents int `envconfig:"GATEWAY_INTENTS" default:"3276799"`

	// Compress asks the gateway to zlib-compress event payloads.
	Compress bool `envconfig:"GATEWAY_COMPRESS" default:"true"`
}

// DispatchConfig tunes the event dispatch loop.
type DispatchConfig struct {
	// MaxConcurrency caps simultaneously running handler invocations.
	// Zero means unbounded fan-out.
	MaxConcurrency int64 `envconfig:"DISPATCH_MAX_CONCURRENCY" default:"0" validate:"gte=0"`

	// RelayBuffer is the ordered delivery channel's capacity.
	RelayBuffer int `envconfig:"DISPATCH_RELAY_BUFFER" default:"256" validate:"gte=0"`
}

// OpsConfig holds the operational HTTP endpoint settings.
type OpsConfig struct {
	// Addr is the listen address for /healthz and /metrics.
	Addr string `envconfig:"OPS_ADDR" default:":9090"`
}

// BuildInfo carries the compile-time identity of the binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// ConfigErrorType categorizes configuration loading failures to aid debugging.
type ConfigErrorType string

const (
	// ErrMissingEnv indicates a required environment variable was not set.
	ErrMissingEnv ConfigErrorType = "MISSING_ENV"
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates a failure when parsing environment variable values
	// into their target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
)
