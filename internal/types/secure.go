package types

// redactedPlaceholder is the string used to replace secret values in logs and
// serialization.
const redactedPlaceholder = "***REDACTED***"

// redactedJSON is the pre-computed JSON encoding of the redacted placeholder.
var redactedJSON = []byte(`"***REDACTED***"`)

// SecretString is a string type that prevents accidental logging or
// serialization of sensitive values, most importantly the bot token. It
// overrides String() and MarshalJSON() to return a redacted placeholder, so
// the token never leaks through fmt functions, structured log entries, or
// JSON config dumps.
//
// Use Unmask() to retrieve the raw plaintext where it is genuinely needed
// (the gateway identify payload).
type SecretString string

// String returns a redacted placeholder instead of the raw value.
func (s SecretString) String() string {
	return redactedPlaceholder
}

// MarshalJSON returns the redacted placeholder as a JSON string.
func (s SecretString) MarshalJSON() ([]byte, error) {
	return redactedJSON, nil
}

// Unmask returns the raw plaintext value of the secret. Usage should be
// limited to the points that actually transmit the credential.
func (s SecretString) Unmask() string {
	return string(s)
}
