package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// snowflakeEpoch is the Discord epoch (2015-01-01T00:00:00Z) in milliseconds
// since the Unix epoch. Snowflake timestamps are offsets from this value.
const snowflakeEpoch = 1420070400000

// Snowflake is the service's 64-bit entity identifier. The gateway serializes
// snowflakes as JSON strings to avoid precision loss in JavaScript clients,
// so the custom JSON methods accept both string and bare number forms.
//
// Snowflake itself is never used directly in domain records; the distinct
// wrapper types below (GuildID, ChannelID, ...) prevent a channel id from
// being accepted where a guild id is expected.
type Snowflake uint64

// ParseSnowflake parses the decimal string form of a snowflake.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ParseSnowflake: %q is not a valid snowflake: %w", s, err)
	}
	return Snowflake(v), nil
}

// String returns the decimal form used on the wire.
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// IsZero reports whether the snowflake is the zero value, which the service
// never issues for a real entity. Used by the decoder for required-field checks.
func (s Snowflake) IsZero() bool {
	return s == 0
}

// Time extracts the creation timestamp embedded in the snowflake's upper bits.
func (s Snowflake) Time() time.Time {
	ms := int64(s>>22) + snowflakeEpoch
	return time.UnixMilli(ms).UTC()
}

// MarshalJSON encodes the snowflake as a decimal string, matching the wire form.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a snowflake from either a JSON string or a bare
// number. JSON null decodes to the zero snowflake.
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" {
		*s = 0
		return nil
	}
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	if str == "" {
		*s = 0
		return nil
	}
	v, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return fmt.Errorf("snowflake: cannot decode %s: %w", string(data), err)
	}
	*s = Snowflake(v)
	return nil
}

// Distinct identifier types. Each wraps Snowflake so ids of different entity
// kinds are not interchangeable at compile time. Equality and ordering are by
// the underlying integer value.
type (
	// GuildID identifies a guild.
	GuildID Snowflake
	// ChannelID identifies a channel or thread.
	ChannelID Snowflake
	// MessageID identifies a message.
	MessageID Snowflake
	// UserID identifies a user account.
	UserID Snowflake
	// RoleID identifies a guild role.
	RoleID Snowflake
	// ApplicationID identifies an application.
	ApplicationID Snowflake
	// EmojiID identifies a custom emoji.
	EmojiID Snowflake
	// WebhookID identifies a webhook.
	WebhookID Snowflake
	// RuleID identifies an auto-moderation rule.
	RuleID Snowflake
)

func (id GuildID) String() string       { return Snowflake(id).String() }
func (id ChannelID) String() string     { return Snowflake(id).String() }
func (id MessageID) String() string     { return Snowflake(id).String() }
func (id UserID) String() string        { return Snowflake(id).String() }
func (id RoleID) String() string        { return Snowflake(id).String() }
func (id ApplicationID) String() string { return Snowflake(id).String() }
func (id EmojiID) String() string       { return Snowflake(id).String() }
func (id WebhookID) String() string     { return Snowflake(id).String() }
func (id RuleID) String() string        { return Snowflake(id).String() }

func (id GuildID) IsZero() bool       { return Snowflake(id).IsZero() }
func (id ChannelID) IsZero() bool     { return Snowflake(id).IsZero() }
func (id MessageID) IsZero() bool     { return Snowflake(id).IsZero() }
func (id UserID) IsZero() bool        { return Snowflake(id).IsZero() }
func (id RoleID) IsZero() bool        { return Snowflake(id).IsZero() }
func (id ApplicationID) IsZero() bool { return Snowflake(id).IsZero() }
func (id EmojiID) IsZero() bool       { return Snowflake(id).IsZero() }
func (id WebhookID) IsZero() bool     { return Snowflake(id).IsZero() }
func (id RuleID) IsZero() bool        { return Snowflake(id).IsZero() }

func (id GuildID) MarshalJSON() ([]byte, error)       { return Snowflake(id).MarshalJSON() }
func (id ChannelID) MarshalJSON() ([]byte, error)     { return Snowflake(id).MarshalJSON() }
func (id MessageID) MarshalJSON() ([]byte, error)     { return Snowflake(id).MarshalJSON() }
func (id UserID) MarshalJSON() ([]byte, error)        { return Snowflake(id).MarshalJSON() }
func (id RoleID) MarshalJSON() ([]byte, error)        { return Snowflake(id).MarshalJSON() }
func (id ApplicationID) MarshalJSON() ([]byte, error) { return Snowflake(id).MarshalJSON() }
func (id EmojiID) MarshalJSON() ([]byte, error)       { return Snowflake(id).MarshalJSON() }
func (id WebhookID) MarshalJSON() ([]byte, error)     { return Snowflake(id).MarshalJSON() }
func (id RuleID) MarshalJSON() ([]byte, error)        { return Snowflake(id).MarshalJSON() }

func (id *GuildID) UnmarshalJSON(data []byte) error       { return (*Snowflake)(id).UnmarshalJSON(data) }
func (id *ChannelID) UnmarshalJSON(data []byte) error     { return (*Snowflake)(id).UnmarshalJSON(data) }
func (id *MessageID) UnmarshalJSON(data []byte) error     { return (*Snowflake)(id).UnmarshalJSON(data) }
func (id *UserID) UnmarshalJSON(data []byte) error        { return (*Snowflake)(id).UnmarshalJSON(data) }
func (id *RoleID) UnmarshalJSON(data []byte) error        { return (*Snowflake)(id).UnmarshalJSON(data) }
func (id *ApplicationID) UnmarshalJSON(data []byte) error { return (*Snowflake)(id).UnmarshalJSON(data) }
func (id *EmojiID) UnmarshalJSON(data []byte) error       { return (*Snowflake)(id).UnmarshalJSON(data) }
func (id *WebhookID) UnmarshalJSON(data []byte) error     { return (*Snowflake)(id).UnmarshalJSON(data) }
func (id *RuleID) UnmarshalJSON(data []byte) error        { return (*Snowflake)(id).UnmarshalJSON(data) }
