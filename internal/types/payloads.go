package types

// Composite payload records. These mirror specific gateway notification
// shapes one-to-one and exist only as decode targets; they are immutable
// after construction.

// PartialApplication is the trimmed application record inside READY.
type PartialApplication struct {
	ID    ApplicationID `json:"id"`
	Flags int           `json:"flags"`
}

// GuildCreateData is the settled form of a GUILD_CREATE payload: the guild
// record plus the nested collections the gateway ships on initial
// availability. Nested channels and threads arrive without a guild_id field;
// the decoder injects the enclosing guild's id before structural decode, so
// every element here carries it.
type GuildCreateData struct {
	Guild

	JoinedAt        Timestamp        `json:"joined_at"`
	Large           bool             `json:"large"`
	Unavailable     bool             `json:"unavailable,omitempty"`
	MemberCount     int              `json:"member_count"`
	VoiceStates     []VoiceState     `json:"voice_states,omitempty"`
	Members         []GuildMember    `json:"members,omitempty"`
	Channels        []Channel        `json:"channels,omitempty"`
	Threads         []Channel        `json:"threads,omitempty"`
	Presences       []Presence       `json:"presences,omitempty"`
	ScheduledEvents []ScheduledEvent `json:"guild_scheduled_events,omitempty"`
}

// ReactionInfo is the payload of MESSAGE_REACTION_ADD and
// MESSAGE_REACTION_REMOVE. GuildID and Member are absent for DM channels.
type ReactionInfo struct {
	UserID    UserID       `json:"user_id"`
	ChannelID ChannelID    `json:"channel_id"`
	MessageID MessageID    `json:"message_id"`
	GuildID   GuildID      `json:"guild_id,omitempty"`
	Member    *GuildMember `json:"member,omitempty"`
	Emoji     Emoji        `json:"emoji"`
}

// ReactionRemoveInfo is the payload of MESSAGE_REACTION_REMOVE_ALL and
// MESSAGE_REACTION_REMOVE_EMOJI; Emoji is set only for the latter.
type ReactionRemoveInfo struct {
	ChannelID ChannelID `json:"channel_id"`
	MessageID MessageID `json:"message_id"`
	GuildID   GuildID   `json:"guild_id,omitempty"`
	Emoji     *Emoji    `json:"emoji,omitempty"`
}

// TypingInfo is the payload of TYPING_START. The wire timestamp is a POSIX
// epoch-seconds number; the decoder converts it into the Timestamp here.
type TypingInfo struct {
	ChannelID ChannelID    `json:"channel_id"`
	GuildID   GuildID      `json:"guild_id,omitempty"`
	UserID    UserID       `json:"user_id"`
	Timestamp Timestamp    `json:"-"`
	Member    *GuildMember `json:"member,omitempty"`
}

// AutoModerationActionExecuteInfo is the payload of
// AUTO_MODERATION_ACTION_EXECUTION.
type AutoModerationActionExecuteInfo struct {
	GuildID              GuildID              `json:"guild_id"`
	Action               AutoModerationAction `json:"action"`
	RuleID               RuleID               `json:"rule_id"`
	RuleTriggerType      int                  `json:"rule_trigger_type"`
	UserID               UserID               `json:"user_id"`
	ChannelID            ChannelID            `json:"channel_id,omitempty"`
	MessageID            MessageID            `json:"message_id,omitempty"`
	AlertSystemMessageID MessageID            `json:"alert_system_message_id,omitempty"`
	Content              string               `json:"content,omitempty"`
	MatchedKeyword       string               `json:"matched_keyword,omitempty"`
	MatchedContent       string               `json:"matched_content,omitempty"`
}

// AutoModerationAction describes the action an auto-moderation rule took.
type AutoModerationAction struct {
	Type     int                           `json:"type"`
	Metadata *AutoModerationActionMetadata `json:"metadata,omitempty"`
}

// AutoModerationActionMetadata carries type-specific action fields.
type AutoModerationActionMetadata struct {
	ChannelID       ChannelID `json:"channel_id,omitempty"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	CustomMessage   string    `json:"custom_message,omitempty"`
}
