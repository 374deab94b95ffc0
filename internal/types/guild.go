package types

// Role is a guild role.
type Role struct {
	ID          RoleID `json:"id"`
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Hoist       bool   `json:"hoist"`
	Icon        string `json:"icon,omitempty"`
	Position    int    `json:"position"`
	Permissions string `json:"permissions"`
	Managed     bool   `json:"managed"`
	Mentionable bool   `json:"mentionable"`
}

// Emoji is a custom guild emoji. Unicode emoji appear with a zero ID and the
// literal character in Name.
type Emoji struct {
	ID            EmojiID  `json:"id,omitempty"`
	Name          string   `json:"name"`
	Roles         []RoleID `json:"roles,omitempty"`
	User          *User    `json:"user,omitempty"`
	RequireColons bool     `json:"require_colons,omitempty"`
	Managed       bool     `json:"managed,omitempty"`
	Animated      bool     `json:"animated,omitempty"`
	Available     bool     `json:"available,omitempty"`
}

// Guild is the settled guild record used by GUILD_UPDATE and embedded in
// GuildCreateData.
type Guild struct {
	ID                          GuildID       `json:"id"`
	Name                        string        `json:"name"`
	Icon                        string        `json:"icon,omitempty"`
	Splash                      string        `json:"splash,omitempty"`
	OwnerID                     UserID        `json:"owner_id"`
	AFKChannelID                ChannelID     `json:"afk_channel_id,omitempty"`
	AFKTimeout                  int           `json:"afk_timeout,omitempty"`
	VerificationLevel           int           `json:"verification_level"`
	DefaultMessageNotifications int           `json:"default_message_notifications"`
	ExplicitContentFilter       int           `json:"explicit_content_filter"`
	Roles                       []Role        `json:"roles,omitempty"`
	Emojis                      []Emoji       `json:"emojis,omitempty"`
	Features                    []string      `json:"features,omitempty"`
	MFALevel                    int           `json:"mfa_level"`
	ApplicationID               ApplicationID `json:"application_id,omitempty"`
	SystemChannelID             ChannelID     `json:"system_channel_id,omitempty"`
	RulesChannelID              ChannelID     `json:"rules_channel_id,omitempty"`
	Description                 string        `json:"description,omitempty"`
	Banner                      string        `json:"banner,omitempty"`
	PremiumTier                 int           `json:"premium_tier"`
	PreferredLocale             string        `json:"preferred_locale,omitempty"`
	NSFWLevel                   int           `json:"nsfw_level"`
}

// UnavailableGuild is the stub form the gateway sends in READY and in
// GUILD_DELETE when a guild goes (or stays) unavailable due to an outage.
// In GUILD_DELETE, Unavailable=false means the client was actually removed.
type UnavailableGuild struct {
	ID          GuildID `json:"id"`
	Unavailable bool    `json:"unavailable"`
}

// VoiceState is a member's realtime voice connection state.
type VoiceState struct {
	GuildID   GuildID      `json:"guild_id,omitempty"`
	ChannelID ChannelID    `json:"channel_id,omitempty"`
	UserID    UserID       `json:"user_id"`
	Member    *GuildMember `json:"member,omitempty"`
	SessionID string       `json:"session_id"`
	Deaf      bool         `json:"deaf"`
	Mute      bool         `json:"mute"`
	SelfDeaf  bool         `json:"self_deaf"`
	SelfMute  bool         `json:"self_mute"`
	SelfVideo bool         `json:"self_video"`
	Suppress  bool         `json:"suppress"`
}

// ScheduledEvent is a guild scheduled event record, nested in GuildCreateData.
type ScheduledEvent struct {
	ID          Snowflake  `json:"id"`
	GuildID     GuildID    `json:"guild_id"`
	ChannelID   ChannelID  `json:"channel_id,omitempty"`
	CreatorID   UserID     `json:"creator_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartTime   Timestamp  `json:"scheduled_start_time"`
	EndTime     *Timestamp `json:"scheduled_end_time,omitempty"`
	Status      int        `json:"status"`
	EntityType  int        `json:"entity_type"`
	UserCount   int        `json:"user_count,omitempty"`
}
