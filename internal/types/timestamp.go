package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp wraps time.Time with the ISO-8601 wire encoding the service uses
// for absolute times (e.g. "2023-01-12T14:02:51.735000+00:00"). The zero
// Timestamp means "absent" for optional fields.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses the service's ISO-8601 timestamp form.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t.UTC()}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("ParseTimestamp: %q is not an ISO-8601 timestamp", s)
}

// TimestampFromUnix converts a POSIX epoch-seconds value into a Timestamp.
// TYPING_START delivers its timestamp in this form.
func TimestampFromUnix(sec int64) Timestamp {
	return Timestamp{Time: time.Unix(sec, 0).UTC()}
}

// MarshalJSON encodes the timestamp as an RFC 3339 string, or null when absent.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON decodes an ISO-8601 string. JSON null decodes to the zero
// Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: expected string, got %s", string(data))
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
