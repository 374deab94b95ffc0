// Package events defines the closed set of gateway event variants and the
// decoder that maps raw (event-name, payload) envelopes onto them.
//
// Every distinct notification the service emits has exactly one variant here;
// names not in the set decode to Unknown with the original name and payload
// preserved. Consumers switching over the variant set must handle Unknown as
// a required case, not an error path, so the set stays forward compatible as
// the service adds event kinds.
package events

import (
	"encoding/json"

	"pulsegate/internal/types"
)

// Event is the canonical decoded form of one gateway notification. Variants
// are immutable values constructed once by Decode and never mutated;
// ownership passes by value to the handler.
//
// The variant set is closed: the unexported marker method keeps outside
// packages from adding variants, so a switch over the set plus Unknown is
// exhaustive.
type Event interface {
	// EventType returns the wire-level event name this variant decodes from.
	EventType() string

	gatewayEvent()
}

// Ready signals successful session establishment. It is the first event of
// every session and carries the connected user, the session id needed to
// resume, and the bare hostname to resume against (the wire form's wss://
// prefix and trailing slash are stripped by the decoder).
type Ready struct {
	Version           int
	User              types.User
	SessionID         string
	ResumeGatewayHost string
	Guilds            []types.UnavailableGuild
	Application       types.PartialApplication
}

// Resumed signals that a dropped session was successfully resumed.
type Resumed struct{}

// ChannelCreate carries a newly created channel.
type ChannelCreate struct {
	Channel types.Channel
}

// ChannelUpdate carries the full updated channel record.
type ChannelUpdate struct {
	Channel types.Channel
}

// ChannelDelete carries the deleted channel's final record.
type ChannelDelete struct {
	Channel types.Channel
}

// ChannelPinsUpdate signals that a channel's pinned messages changed.
// LastPinTimestamp is zero when the field was absent or unparsable; an
// unparsable value is deliberately treated as absent because the field is
// informational.
type ChannelPinsUpdate struct {
	GuildID          types.GuildID
	ChannelID        types.ChannelID
	LastPinTimestamp types.Timestamp
}

// ThreadCreate carries a newly created or newly joined thread.
type ThreadCreate struct {
	Thread types.Channel
}

// ThreadUpdate carries the full updated thread record.
type ThreadUpdate struct {
	Thread types.Channel
}

// ThreadDelete carries the identifying remnant of a deleted thread.
type ThreadDelete struct {
	ID       types.ChannelID
	GuildID  types.GuildID
	ParentID types.ChannelID
	Type     types.ChannelType
}

// GuildCreate signals a guild becoming available: on session start, on
// outage recovery, or on joining a new guild. Nested channels and threads
// carry the enclosing guild's id even though the wire form omits it.
type GuildCreate struct {
	Guild types.GuildCreateData
}

// GuildUpdate carries the full updated guild record.
type GuildUpdate struct {
	Guild types.Guild
}

// GuildDelete signals a guild becoming unavailable. Unavailable=false on the
// stub means the client was removed from the guild rather than an outage.
type GuildDelete struct {
	Guild types.UnavailableGuild
}

// GuildBanAdd signals a user being banned from a guild.
type GuildBanAdd struct {
	GuildID types.GuildID
	User    types.User
}

// GuildBanRemove signals a user's ban being lifted.
type GuildBanRemove struct {
	GuildID types.GuildID
	User    types.User
}

// GuildEmojisUpdate carries the guild's full replacement emoji list.
type GuildEmojisUpdate struct {
	GuildID types.GuildID
	Emojis  []types.Emoji
}

// GuildMemberAdd signals a user joining a guild.
type GuildMemberAdd struct {
	GuildID types.GuildID
	Member  types.GuildMember
}

// GuildMemberRemove signals a user leaving, being kicked from, or being
// banned from a guild.
type GuildMemberRemove struct {
	GuildID types.GuildID
	User    types.User
}

// GuildMemberUpdate carries the changed membership fields for one member.
type GuildMemberUpdate struct {
	GuildID types.GuildID
	Roles   []types.RoleID
	User    types.User
	Nick    string
	Avatar  string
}

// GuildRoleCreate carries a newly created role.
type GuildRoleCreate struct {
	GuildID types.GuildID
	Role    types.Role
}

// GuildRoleUpdate carries the full updated role record.
type GuildRoleUpdate struct {
	GuildID types.GuildID
	Role    types.Role
}

// GuildRoleDelete identifies a deleted role.
type GuildRoleDelete struct {
	GuildID types.GuildID
	RoleID  types.RoleID
}

// InviteCreate signals a new invite to a channel.
type InviteCreate struct {
	ChannelID types.ChannelID
	Code      string
	CreatedAt types.Timestamp
	GuildID   types.GuildID
	Inviter   *types.User
	MaxAge    int
	MaxUses   int
	Temporary bool
	Uses      int
}

// InviteDelete signals an invite being revoked or expiring.
type InviteDelete struct {
	ChannelID types.ChannelID
	GuildID   types.GuildID
	Code      string
}

// MessageCreate carries a newly sent message.
type MessageCreate struct {
	Message types.Message
}

// MessageUpdate carries an edited message. The record may be partial; only
// ID and ChannelID are guaranteed present.
type MessageUpdate struct {
	Message types.Message
}

// MessageDelete identifies a deleted message.
type MessageDelete struct {
	ID        types.MessageID
	ChannelID types.ChannelID
	GuildID   types.GuildID
}

// MessageDeleteBulk identifies a batch of messages deleted at once.
type MessageDeleteBulk struct {
	IDs       []types.MessageID
	ChannelID types.ChannelID
	GuildID   types.GuildID
}

// MessageReactionAdd signals a reaction being added to a message.
type MessageReactionAdd struct {
	Reaction types.ReactionInfo
}

// MessageReactionRemove signals one user's reaction being removed.
type MessageReactionRemove struct {
	Reaction types.ReactionInfo
}

// MessageReactionRemoveAll signals all reactions being cleared from a message.
type MessageReactionRemoveAll struct {
	Removal types.ReactionRemoveInfo
}

// MessageReactionRemoveEmoji signals all reactions of one emoji being cleared.
type MessageReactionRemoveEmoji struct {
	Removal types.ReactionRemoveInfo
}

// PresenceUpdate carries a member's changed presence.
type PresenceUpdate struct {
	Presence types.Presence
}

// TypingStart signals a user starting to type in a channel.
type TypingStart struct {
	Typing types.TypingInfo
}

// UserUpdate carries the connected user's updated account record.
type UserUpdate struct {
	User types.User
}

// VoiceStateUpdate carries a member's changed voice connection state.
type VoiceStateUpdate struct {
	State types.VoiceState
}

// WebhooksUpdate signals that a channel's webhooks changed.
type WebhooksUpdate struct {
	GuildID   types.GuildID
	ChannelID types.ChannelID
}

// AutoModerationActionExecution signals an auto-moderation rule firing.
type AutoModerationActionExecution struct {
	Execution types.AutoModerationActionExecuteInfo
}

// Unknown is the catch-all variant for event names outside the recognized
// set. Name holds the wire name verbatim and Raw the untouched payload; Data
// is a best-effort structural re-decode of the payload as a generic document
// and is nil when the payload is not a JSON object.
type Unknown struct {
	Name string
	Raw  json.RawMessage
	Data map[string]any
}

// Event names as they appear on the wire. The decoder's dispatch table is
// keyed by these exact, case-sensitive strings.
const (
	TypeReady                         = "READY"
	TypeResumed                       = "RESUMED"
	TypeChannelCreate                 = "CHANNEL_CREATE"
	TypeChannelUpdate                 = "CHANNEL_UPDATE"
	TypeChannelDelete                 = "CHANNEL_DELETE"
	TypeChannelPinsUpdate             = "CHANNEL_PINS_UPDATE"
	TypeThreadCreate                  = "THREAD_CREATE"
	TypeThreadUpdate                  = "THREAD_UPDATE"
	TypeThreadDelete                  = "THREAD_DELETE"
	TypeGuildCreate                   = "GUILD_CREATE"
	TypeGuildUpdate                   = "GUILD_UPDATE"
	TypeGuildDelete                   = "GUILD_DELETE"
	TypeGuildBanAdd                   = "GUILD_BAN_ADD"
	TypeGuildBanRemove                = "GUILD_BAN_REMOVE"
	TypeGuildEmojisUpdate             = "GUILD_EMOJIS_UPDATE"
	TypeGuildMemberAdd                = "GUILD_MEMBER_ADD"
	TypeGuildMemberRemove             = "GUILD_MEMBER_REMOVE"
	TypeGuildMemberUpdate             = "GUILD_MEMBER_UPDATE"
	TypeGuildRoleCreate               = "GUILD_ROLE_CREATE"
	TypeGuildRoleUpdate               = "GUILD_ROLE_UPDATE"
	TypeGuildRoleDelete               = "GUILD_ROLE_DELETE"
	TypeInviteCreate                  = "INVITE_CREATE"
	TypeInviteDelete                  = "INVITE_DELETE"
	TypeMessageCreate                 = "MESSAGE_CREATE"
	TypeMessageUpdate                 = "MESSAGE_UPDATE"
	TypeMessageDelete                 = "MESSAGE_DELETE"
	TypeMessageDeleteBulk             = "MESSAGE_DELETE_BULK"
	TypeMessageReactionAdd            = "MESSAGE_REACTION_ADD"
	TypeMessageReactionRemove         = "MESSAGE_REACTION_REMOVE"
	TypeMessageReactionRemoveAll      = "MESSAGE_REACTION_REMOVE_ALL"
	TypeMessageReactionRemoveEmoji    = "MESSAGE_REACTION_REMOVE_EMOJI"
	TypePresenceUpdate                = "PRESENCE_UPDATE"
	TypeTypingStart                   = "TYPING_START"
	TypeUserUpdate                    = "USER_UPDATE"
	TypeVoiceStateUpdate              = "VOICE_STATE_UPDATE"
	TypeWebhooksUpdate                = "WEBHOOKS_UPDATE"
	TypeAutoModerationActionExecution = "AUTO_MODERATION_ACTION_EXECUTION"
)

func (Ready) EventType() string                         { return TypeReady }
func (Resumed) EventType() string                       { return TypeResumed }
func (ChannelCreate) EventType() string                 { return TypeChannelCreate }
func (ChannelUpdate) EventType() string                 { return TypeChannelUpdate }
func (ChannelDelete) EventType() string                 { return TypeChannelDelete }
func (ChannelPinsUpdate) EventType() string             { return TypeChannelPinsUpdate }
func (ThreadCreate) EventType() string                  { return TypeThreadCreate }
func (ThreadUpdate) EventType() string                  { return TypeThreadUpdate }
func (ThreadDelete) EventType() string                  { return TypeThreadDelete }
func (GuildCreate) EventType() string                   { return TypeGuildCreate }
func (GuildUpdate) EventType() string                   { return TypeGuildUpdate }
func (GuildDelete) EventType() string                   { return TypeGuildDelete }
func (GuildBanAdd) EventType() string                   { return TypeGuildBanAdd }
func (GuildBanRemove) EventType() string                { return TypeGuildBanRemove }
func (GuildEmojisUpdate) EventType() string             { return TypeGuildEmojisUpdate }
func (GuildMemberAdd) EventType() string                { return TypeGuildMemberAdd }
func (GuildMemberRemove) EventType() string             { return TypeGuildMemberRemove }
func (GuildMemberUpdate) EventType() string             { return TypeGuildMemberUpdate }
func (GuildRoleCreate) EventType() string               { return TypeGuildRoleCreate }
func (GuildRoleUpdate) EventType() string               { return TypeGuildRoleUpdate }
func (GuildRoleDelete) EventType() string               { return TypeGuildRoleDelete }
func (InviteCreate) EventType() string                  { return TypeInviteCreate }
func (InviteDelete) EventType() string                  { return TypeInviteDelete }
func (MessageCreate) EventType() string                 { return TypeMessageCreate }
func (MessageUpdate) EventType() string                 { return TypeMessageUpdate }
func (MessageDelete) EventType() string                 { return TypeMessageDelete }
func (MessageDeleteBulk) EventType() string             { return TypeMessageDeleteBulk }
func (MessageReactionAdd) EventType() string            { return TypeMessageReactionAdd }
func (MessageReactionRemove) EventType() string         { return TypeMessageReactionRemove }
func (MessageReactionRemoveAll) EventType() string      { return TypeMessageReactionRemoveAll }
func (MessageReactionRemoveEmoji) EventType() string    { return TypeMessageReactionRemoveEmoji }
func (PresenceUpdate) EventType() string                { return TypePresenceUpdate }
func (TypingStart) EventType() string                   { return TypeTypingStart }
func (UserUpdate) EventType() string                    { return TypeUserUpdate }
func (VoiceStateUpdate) EventType() string              { return TypeVoiceStateUpdate }
func (WebhooksUpdate) EventType() string                { return TypeWebhooksUpdate }
func (AutoModerationActionExecution) EventType() string { return TypeAutoModerationActionExecution }

// EventType returns the original wire name the unknown event arrived under.
func (u Unknown) EventType() string { return u.Name }

func (Ready) gatewayEvent()                         {}
func (Resumed) gatewayEvent()                       {}
func (ChannelCreate) gatewayEvent()                 {}
func (ChannelUpdate) gatewayEvent()                 {}
func (ChannelDelete) gatewayEvent()                 {}
func (ChannelPinsUpdate) gatewayEvent()             {}
func (ThreadCreate) gatewayEvent()                  {}
func (ThreadUpdate) gatewayEvent()                  {}
func (ThreadDelete) gatewayEvent()                  {}
func (GuildCreate) gatewayEvent()                   {}
func (GuildUpdate) gatewayEvent()                   {}
func (GuildDelete) gatewayEvent()                   {}
func (GuildBanAdd) gatewayEvent()                   {}
func (GuildBanRemove) gatewayEvent()                {}
func (GuildEmojisUpdate) gatewayEvent()             {}
func (GuildMemberAdd) gatewayEvent()                {}
func (GuildMemberRemove) gatewayEvent()             {}
func (GuildMemberUpdate) gatewayEvent()             {}
func (GuildRoleCreate) gatewayEvent()               {}
func (GuildRoleUpdate) gatewayEvent()               {}
func (GuildRoleDelete) gatewayEvent()               {}
func (InviteCreate) gatewayEvent()                  {}
func (InviteDelete) gatewayEvent()                  {}
func (MessageCreate) gatewayEvent()                 {}
func (MessageUpdate) gatewayEvent()                 {}
func (MessageDelete) gatewayEvent()                 {}
func (MessageDeleteBulk) gatewayEvent()             {}
func (MessageReactionAdd) gatewayEvent()            {}
func (MessageReactionRemove) gatewayEvent()         {}
func (MessageReactionRemoveAll) gatewayEvent()      {}
func (MessageReactionRemoveEmoji) gatewayEvent()    {}
func (PresenceUpdate) gatewayEvent()                {}
func (TypingStart) gatewayEvent()                   {}
func (UserUpdate) gatewayEvent()                    {}
func (VoiceStateUpdate) gatewayEvent()              {}
func (WebhooksUpdate) gatewayEvent()                {}
func (AutoModerationActionExecution) gatewayEvent() {}
func (Unknown) gatewayEvent()                       {}
