package events

import (
	"encoding/json"
	"errors"
	"strings"

	"pulsegate/internal/types"
)

// decodeFunc converts one raw gateway payload into its event variant.
// Implementations are pure: no I/O, no shared state, same output for the
// same input.
type decodeFunc func(raw json.RawMessage) (Event, error)

// eventDecoders is the static dispatch table keyed by exact, case-sensitive
// wire event names. Adding a new event kind is one table entry plus its
// variant; names missing from the table fall through to the Unknown rule.
var eventDecoders = map[string]decodeFunc{
	TypeReady:                         decodeReady,
	TypeResumed:                       decodeResumed,
	TypeChannelCreate:                 channelDecoder(TypeChannelCreate, func(c types.Channel) Event { return ChannelCreate{Channel: c} }),
	TypeChannelUpdate:                 channelDecoder(TypeChannelUpdate, func(c types.Channel) Event { return ChannelUpdate{Channel: c} }),
	TypeChannelDelete:                 channelDecoder(TypeChannelDelete, func(c types.Channel) Event { return ChannelDelete{Channel: c} }),
	TypeChannelPinsUpdate:             decodeChannelPinsUpdate,
	TypeThreadCreate:                  channelDecoder(TypeThreadCreate, func(c types.Channel) Event { return ThreadCreate{Thread: c} }),
	TypeThreadUpdate:                  channelDecoder(TypeThreadUpdate, func(c types.Channel) Event { return ThreadUpdate{Thread: c} }),
	TypeThreadDelete:                  decodeThreadDelete,
	TypeGuildCreate:                   decodeGuildCreate,
	TypeGuildUpdate:                   decodeGuildUpdate,
	TypeGuildDelete:                   decodeGuildDelete,
	TypeGuildBanAdd:                   banDecoder(TypeGuildBanAdd, func(g types.GuildID, u types.User) Event { return GuildBanAdd{GuildID: g, User: u} }),
	TypeGuildBanRemove:                banDecoder(TypeGuildBanRemove, func(g types.GuildID, u types.User) Event { return GuildBanRemove{GuildID: g, User: u} }),
	TypeGuildEmojisUpdate:             decodeGuildEmojisUpdate,
	TypeGuildMemberAdd:                decodeGuildMemberAdd,
	TypeGuildMemberRemove:             decodeGuildMemberRemove,
	TypeGuildMemberUpdate:             decodeGuildMemberUpdate,
	TypeGuildRoleCreate:               roleDecoder(TypeGuildRoleCreate, func(g types.GuildID, r types.Role) Event { return GuildRoleCreate{GuildID: g, Role: r} }),
	TypeGuildRoleUpdate:               roleDecoder(TypeGuildRoleUpdate, func(g types.GuildID, r types.Role) Event { return GuildRoleUpdate{GuildID: g, Role: r} }),
	TypeGuildRoleDelete:               decodeGuildRoleDelete,
	TypeInviteCreate:                  decodeInviteCreate,
	TypeInviteDelete:                  decodeInviteDelete,
	TypeMessageCreate:                 messageDecoder(TypeMessageCreate, func(m types.Message) Event { return MessageCreate{Message: m} }),
	TypeMessageUpdate:                 messageDecoder(TypeMessageUpdate, func(m types.Message) Event { return MessageUpdate{Message: m} }),
	TypeMessageDelete:                 decodeMessageDelete,
	TypeMessageDeleteBulk:             decodeMessageDeleteBulk,
	TypeMessageReactionAdd:            reactionDecoder(TypeMessageReactionAdd, func(r types.ReactionInfo) Event { return MessageReactionAdd{Reaction: r} }),
	TypeMessageReactionRemove:         reactionDecoder(TypeMessageReactionRemove, func(r types.ReactionInfo) Event { return MessageReactionRemove{Reaction: r} }),
	TypeMessageReactionRemoveAll:      decodeReactionRemoveAll,
	TypeMessageReactionRemoveEmoji:    decodeReactionRemoveEmoji,
	TypePresenceUpdate:                decodePresenceUpdate,
	TypeTypingStart:                   decodeTypingStart,
	TypeUserUpdate:                    decodeUserUpdate,
	TypeVoiceStateUpdate:              decodeVoiceStateUpdate,
	TypeWebhooksUpdate:                decodeWebhooksUpdate,
	TypeAutoModerationActionExecution: decodeAutoModerationActionExecution,
}

// Decode maps a wire-level (event-name, raw-payload) pair to its decoded
// event variant. It is a pure function of its two inputs; decoding one event
// never depends on or mutates state from any other.
//
// Recognized names decode through their table rule and fail with a
// *types.DecodeError when a required field is missing or the payload shape
// is wrong. Unrecognized names never fail: they produce Unknown carrying the
// name verbatim, the untouched payload, and a best-effort generic re-decode.
func Decode(name string, payload json.RawMessage) (Event, error) {
	if decode, ok := eventDecoders[name]; ok {
		return decode(payload)
	}
	return decodeUnknown(name, payload), nil
}

// Recognized reports whether the event name has a dedicated decode rule.
func Recognized(name string) bool {
	_, ok := eventDecoders[name]
	return ok
}

// reinterpret feeds the whole payload back through the target type's own
// decoding rule. This is the "whole-payload re-decode" pattern: the generic
// document is re-read as a self-contained record rather than projected field
// by field.
func reinterpret[T any](event string, raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, shapeError(event, err)
	}
	return v, nil
}

// shapeError wraps a json unmarshal failure into a DecodeError, extracting
// the offending field path when the encoder reports one.
func shapeError(event string, err error) *types.DecodeError {
	field := ""
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field = typeErr.Field
	}
	return types.NewDecodeError(event, field, types.ErrCodeDecodeWrongShape, "payload does not match event schema", err)
}

// missingField reports a required key absent from the payload.
func missingField(event, field string) *types.DecodeError {
	return types.NewDecodeError(event, field, types.ErrCodeDecodeMissingField, "required field missing", nil)
}

// trimGatewayHost strips the literal "wss://" scheme marker and a single
// trailing "/" from the resume gateway URL, leaving a bare hostname. This is
// a character-stream transform, not a URL parse: anything other than those
// exact markers passes through unchanged.
func trimGatewayHost(u string) string {
	u = strings.TrimPrefix(u, "wss://")
	return strings.TrimSuffix(u, "/")
}

func decodeReady(raw json.RawMessage) (Event, error) {
	var p struct {
		Version     int                      `json:"v"`
		User        *types.User              `json:"user"`
		SessionID   string                   `json:"session_id"`
		ResumeURL   string                   `json:"resume_gateway_url"`
		Guilds      []types.UnavailableGuild `json:"guilds"`
		Application types.PartialApplication `json:"application"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeReady, err)
	}
	if p.User == nil {
		return nil, missingField(TypeReady, "user")
	}
	if p.SessionID == "" {
		return nil, missingField(TypeReady, "session_id")
	}
	return Ready{
		Version:           p.Version,
		User:              *p.User,
		SessionID:         p.SessionID,
		ResumeGatewayHost: trimGatewayHost(p.ResumeURL),
		Guilds:            p.Guilds,
		Application:       p.Application,
	}, nil
}

func decodeResumed(json.RawMessage) (Event, error) {
	return Resumed{}, nil
}

// channelDecoder builds a whole-payload re-decode rule for the channel-shaped
// events, wrapping the decoded record into the given variant.
func channelDecoder(event string, wrap func(types.Channel) Event) decodeFunc {
	return func(raw json.RawMessage) (Event, error) {
		ch, err := reinterpret[types.Channel](event, raw)
		if err != nil {
			return nil, err
		}
		if ch.ID.IsZero() {
			return nil, missingField(event, "id")
		}
		return wrap(ch), nil
	}
}

func decodeChannelPinsUpdate(raw json.RawMessage) (Event, error) {
	var p struct {
		GuildID          types.GuildID   `json:"guild_id"`
		ChannelID        types.ChannelID `json:"channel_id"`
		LastPinTimestamp json.RawMessage `json:"last_pin_timestamp"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeChannelPinsUpdate, err)
	}
	if p.ChannelID.IsZero() {
		return nil, missingField(TypeChannelPinsUpdate, "channel_id")
	}

	// last_pin_timestamp is informational: a malformed value degrades to
	// absent rather than failing the event.
	var lastPin types.Timestamp
	if len(p.LastPinTimestamp) > 0 {
		var s string
		if err := json.Unmarshal(p.LastPinTimestamp, &s); err == nil {
			if ts, err := types.ParseTimestamp(s); err == nil {
				lastPin = ts
			}
		}
	}

	return ChannelPinsUpdate{
		GuildID:          p.GuildID,
		ChannelID:        p.ChannelID,
		LastPinTimestamp: lastPin,
	}, nil
}

func decodeThreadDelete(raw json.RawMessage) (Event, error) {
	var p struct {
		ID       types.ChannelID   `json:"id"`
		GuildID  types.GuildID     `json:"guild_id"`
		ParentID types.ChannelID   `json:"parent_id"`
		Type     types.ChannelType `json:"type"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeThreadDelete, err)
	}
	if p.ID.IsZero() {
		return nil, missingField(TypeThreadDelete, "id")
	}
	return ThreadDelete{ID: p.ID, GuildID: p.GuildID, ParentID: p.ParentID, Type: p.Type}, nil
}

// decodeGuildCreate performs the denormalizing rewrite unique to
// GUILD_CREATE: nested channel and thread documents arrive without a
// guild_id (the service omits it as implied by the envelope), so the
// enclosing guild's id is injected into each one as a synthetic field before
// the payload is structurally decoded.
func decodeGuildCreate(raw json.RawMessage) (Event, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, shapeError(TypeGuildCreate, err)
	}

	var guildID types.GuildID
	idRaw, ok := doc["id"]
	if !ok {
		return nil, missingField(TypeGuildCreate, "id")
	}
	if err := json.Unmarshal(idRaw, &guildID); err != nil || guildID.IsZero() {
		return nil, types.NewDecodeError(TypeGuildCreate, "id", types.ErrCodeDecodeBadValue, "guild id is not a snowflake", err)
	}

	for _, key := range []string{"channels", "threads"} {
		if nested, ok := doc[key]; ok {
			repaired, err := injectGuildID(nested, guildID)
			if err != nil {
				return nil, types.NewDecodeError(TypeGuildCreate, key, types.ErrCodeDecodeWrongShape, "nested documents are not objects", err)
			}
			doc[key] = repaired
		}
	}

	repairedPayload, err := json.Marshal(doc)
	if err != nil {
		return nil, types.NewDecodeError(TypeGuildCreate, "", types.ErrCodeDecodeWrongShape, "failed to reassemble repaired payload", err)
	}

	data, err := reinterpret[types.GuildCreateData](TypeGuildCreate, repairedPayload)
	if err != nil {
		return nil, err
	}
	return GuildCreate{Guild: data}, nil
}

// injectGuildID sets guild_id on every element of a raw JSON array of
// objects, skipping elements that already carry one. The repair happens on
// the raw documents so it precedes structural decoding.
func injectGuildID(rawArray json.RawMessage, guildID types.GuildID) (json.RawMessage, error) {
	var elems []map[string]json.RawMessage
	if err := json.Unmarshal(rawArray, &elems); err != nil {
		return nil, err
	}

	idJSON, err := json.Marshal(guildID)
	if err != nil {
		return nil, err
	}

	for _, elem := range elems {
		if _, exists := elem["guild_id"]; !exists {
			elem["guild_id"] = idJSON
		}
	}

	return json.Marshal(elems)
}

func decodeGuildUpdate(raw json.RawMessage) (Event, error) {
	g, err := reinterpret[types.Guild](TypeGuildUpdate, raw)
	if err != nil {
		return nil, err
	}
	if g.ID.IsZero() {
		return nil, missingField(TypeGuildUpdate, "id")
	}
	return GuildUpdate{Guild: g}, nil
}

func decodeGuildDelete(raw json.RawMessage) (Event, error) {
	g, err := reinterpret[types.UnavailableGuild](TypeGuildDelete, raw)
	if err != nil {
		return nil, err
	}
	if g.ID.IsZero() {
		return nil, missingField(TypeGuildDelete, "id")
	}
	return GuildDelete{Guild: g}, nil
}

// banDecoder builds the direct field projection rule shared by
// GUILD_BAN_ADD and GUILD_BAN_REMOVE: guild_id and user, both required.
func banDecoder(event string, wrap func(types.GuildID, types.User) Event) decodeFunc {
	return func(raw json.RawMessage) (Event, error) {
		var p struct {
			GuildID types.GuildID `json:"guild_id"`
			User    *types.User   `json:"user"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, shapeError(event, err)
		}
		if p.GuildID.IsZero() {
			return nil, missingField(event, "guild_id")
		}
		if p.User == nil {
			return nil, missingField(event, "user")
		}
		return wrap(p.GuildID, *p.User), nil
	}
}

func decodeGuildEmojisUpdate(raw json.RawMessage) (Event, error) {
	var p struct {
		GuildID types.GuildID `json:"guild_id"`
		Emojis  []types.Emoji `json:"emojis"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeGuildEmojisUpdate, err)
	}
	if p.GuildID.IsZero() {
		return nil, missingField(TypeGuildEmojisUpdate, "guild_id")
	}
	return GuildEmojisUpdate{GuildID: p.GuildID, Emojis: p.Emojis}, nil
}

func decodeGuildMemberAdd(raw json.RawMessage) (Event, error) {
	// The payload is a guild member record with an extra guild_id key.
	var p struct {
		GuildID types.GuildID `json:"guild_id"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeGuildMemberAdd, err)
	}
	if p.GuildID.IsZero() {
		return nil, missingField(TypeGuildMemberAdd, "guild_id")
	}
	member, err := reinterpret[types.GuildMember](TypeGuildMemberAdd, raw)
	if err != nil {
		return nil, err
	}
	if member.User == nil {
		return nil, missingField(TypeGuildMemberAdd, "user")
	}
	return GuildMemberAdd{GuildID: p.GuildID, Member: member}, nil
}

func decodeGuildMemberRemove(raw json.RawMessage) (Event, error) {
	var p struct {
		GuildID types.GuildID `json:"guild_id"`
		User    *types.User   `json:"user"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeGuildMemberRemove, err)
	}
	if p.GuildID.IsZero() {
		return nil, missingField(TypeGuildMemberRemove, "guild_id")
	}
	if p.User == nil {
		return nil, missingField(TypeGuildMemberRemove, "user")
	}
	return GuildMemberRemove{GuildID: p.GuildID, User: *p.User}, nil
}

func decodeGuildMemberUpdate(raw json.RawMessage) (Event, error) {
	var p struct {
		GuildID types.GuildID  `json:"guild_id"`
		Roles   []types.RoleID `json:"roles"`
		User    *types.User    `json:"user"`
		Nick    string         `json:"nick"`
		Avatar  string         `json:"avatar"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeGuildMemberUpdate, err)
	}
	if p.GuildID.IsZero() {
		return nil, missingField(TypeGuildMemberUpdate, "guild_id")
	}
	if p.User == nil {
		return nil, missingField(TypeGuildMemberUpdate, "user")
	}
	return GuildMemberUpdate{
		GuildID: p.GuildID,
		Roles:   p.Roles,
		User:    *p.User,
		Nick:    p.Nick,
		Avatar:  p.Avatar,
	}, nil
}

// roleDecoder builds the shared projection rule for GUILD_ROLE_CREATE and
// GUILD_ROLE_UPDATE: guild_id and a complete role record, both required.
func roleDecoder(event string, wrap func(types.GuildID, types.Role) Event) decodeFunc {
	return func(raw json.RawMessage) (Event, error) {
		var p struct {
			GuildID types.GuildID `json:"guild_id"`
			Role    *types.Role   `json:"role"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, shapeError(event, err)
		}
		if p.GuildID.IsZero() {
			return nil, missingField(event, "guild_id")
		}
		if p.Role == nil {
			return nil, missingField(event, "role")
		}
		return wrap(p.GuildID, *p.Role), nil
	}
}

func decodeGuildRoleDelete(raw json.RawMessage) (Event, error) {
	var p struct {
		GuildID types.GuildID `json:"guild_id"`
		RoleID  types.RoleID  `json:"role_id"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeGuildRoleDelete, err)
	}
	if p.GuildID.IsZero() {
		return nil, missingField(TypeGuildRoleDelete, "guild_id")
	}
	if p.RoleID.IsZero() {
		return nil, missingField(TypeGuildRoleDelete, "role_id")
	}
	return GuildRoleDelete{GuildID: p.GuildID, RoleID: p.RoleID}, nil
}

func decodeInviteCreate(raw json.RawMessage) (Event, error) {
	var p struct {
		ChannelID types.ChannelID `json:"channel_id"`
		Code      string          `json:"code"`
		CreatedAt types.Timestamp `json:"created_at"`
		GuildID   types.GuildID   `json:"guild_id"`
		Inviter   *types.User     `json:"inviter"`
		MaxAge    int             `json:"max_age"`
		MaxUses   int             `json:"max_uses"`
		Temporary bool            `json:"temporary"`
		Uses      int             `json:"uses"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeInviteCreate, err)
	}
	if p.ChannelID.IsZero() {
		return nil, missingField(TypeInviteCreate, "channel_id")
	}
	if p.Code == "" {
		return nil, missingField(TypeInviteCreate, "code")
	}
	return InviteCreate{
		ChannelID: p.ChannelID,
		Code:      p.Code,
		CreatedAt: p.CreatedAt,
		GuildID:   p.GuildID,
		Inviter:   p.Inviter,
		MaxAge:    p.MaxAge,
		MaxUses:   p.MaxUses,
		Temporary: p.Temporary,
		Uses:      p.Uses,
	}, nil
}

func decodeInviteDelete(raw json.RawMessage) (Event, error) {
	var p struct {
		ChannelID types.ChannelID `json:"channel_id"`
		GuildID   types.GuildID   `json:"guild_id"`
		Code      string          `json:"code"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeInviteDelete, err)
	}
	if p.ChannelID.IsZero() {
		return nil, missingField(TypeInviteDelete, "channel_id")
	}
	if p.Code == "" {
		return nil, missingField(TypeInviteDelete, "code")
	}
	return InviteDelete{ChannelID: p.ChannelID, GuildID: p.GuildID, Code: p.Code}, nil
}

// messageDecoder builds the whole-payload re-decode rule for MESSAGE_CREATE
// and MESSAGE_UPDATE. Update payloads may be partial, so only the
// identifying fields are required.
func messageDecoder(event string, wrap func(types.Message) Event) decodeFunc {
	return func(raw json.RawMessage) (Event, error) {
		msg, err := reinterpret[types.Message](event, raw)
		if err != nil {
			return nil, err
		}
		if msg.ID.IsZero() {
			return nil, missingField(event, "id")
		}
		if msg.ChannelID.IsZero() {
			return nil, missingField(event, "channel_id")
		}
		return wrap(msg), nil
	}
}

func decodeMessageDelete(raw json.RawMessage) (Event, error) {
	var p struct {
		ID        types.MessageID `json:"id"`
		ChannelID types.ChannelID `json:"channel_id"`
		GuildID   types.GuildID   `json:"guild_id"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeMessageDelete, err)
	}
	if p.ID.IsZero() {
		return nil, missingField(TypeMessageDelete, "id")
	}
	if p.ChannelID.IsZero() {
		return nil, missingField(TypeMessageDelete, "channel_id")
	}
	return MessageDelete{ID: p.ID, ChannelID: p.ChannelID, GuildID: p.GuildID}, nil
}

func decodeMessageDeleteBulk(raw json.RawMessage) (Event, error) {
	var p struct {
		IDs       []types.MessageID `json:"ids"`
		ChannelID types.ChannelID   `json:"channel_id"`
		GuildID   types.GuildID     `json:"guild_id"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeMessageDeleteBulk, err)
	}
	if len(p.IDs) == 0 {
		return nil, missingField(TypeMessageDeleteBulk, "ids")
	}
	if p.ChannelID.IsZero() {
		return nil, missingField(TypeMessageDeleteBulk, "channel_id")
	}
	return MessageDeleteBulk{IDs: p.IDs, ChannelID: p.ChannelID, GuildID: p.GuildID}, nil
}

// reactionDecoder builds the re-decode rule shared by MESSAGE_REACTION_ADD
// and MESSAGE_REACTION_REMOVE.
func reactionDecoder(event string, wrap func(types.ReactionInfo) Event) decodeFunc {
	return func(raw json.RawMessage) (Event, error) {
		r, err := reinterpret[types.ReactionInfo](event, raw)
		if err != nil {
			return nil, err
		}
		if r.UserID.IsZero() {
			return nil, missingField(event, "user_id")
		}
		if r.ChannelID.IsZero() {
			return nil, missingField(event, "channel_id")
		}
		if r.MessageID.IsZero() {
			return nil, missingField(event, "message_id")
		}
		return wrap(r), nil
	}
}

func decodeReactionRemoveAll(raw json.RawMessage) (Event, error) {
	r, err := reinterpret[types.ReactionRemoveInfo](TypeMessageReactionRemoveAll, raw)
	if err != nil {
		return nil, err
	}
	if r.ChannelID.IsZero() {
		return nil, missingField(TypeMessageReactionRemoveAll, "channel_id")
	}
	if r.MessageID.IsZero() {
		return nil, missingField(TypeMessageReactionRemoveAll, "message_id")
	}
	return MessageReactionRemoveAll{Removal: r}, nil
}

func decodeReactionRemoveEmoji(raw json.RawMessage) (Event, error) {
	r, err := reinterpret[types.ReactionRemoveInfo](TypeMessageReactionRemoveEmoji, raw)
	if err != nil {
		return nil, err
	}
	if r.ChannelID.IsZero() {
		return nil, missingField(TypeMessageReactionRemoveEmoji, "channel_id")
	}
	if r.MessageID.IsZero() {
		return nil, missingField(TypeMessageReactionRemoveEmoji, "message_id")
	}
	if r.Emoji == nil {
		return nil, missingField(TypeMessageReactionRemoveEmoji, "emoji")
	}
	return MessageReactionRemoveEmoji{Removal: r}, nil
}

func decodePresenceUpdate(raw json.RawMessage) (Event, error) {
	p, err := reinterpret[types.Presence](TypePresenceUpdate, raw)
	if err != nil {
		return nil, err
	}
	if p.User.ID.IsZero() {
		return nil, missingField(TypePresenceUpdate, "user")
	}
	return PresenceUpdate{Presence: p}, nil
}

func decodeTypingStart(raw json.RawMessage) (Event, error) {
	var p struct {
		ChannelID types.ChannelID    `json:"channel_id"`
		GuildID   types.GuildID      `json:"guild_id"`
		UserID    types.UserID       `json:"user_id"`
		Timestamp *int64             `json:"timestamp"`
		Member    *types.GuildMember `json:"member"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeTypingStart, err)
	}
	if p.ChannelID.IsZero() {
		return nil, missingField(TypeTypingStart, "channel_id")
	}
	if p.UserID.IsZero() {
		return nil, missingField(TypeTypingStart, "user_id")
	}
	if p.Timestamp == nil {
		return nil, missingField(TypeTypingStart, "timestamp")
	}
	return TypingStart{Typing: types.TypingInfo{
		ChannelID: p.ChannelID,
		GuildID:   p.GuildID,
		UserID:    p.UserID,
		Timestamp: types.TimestampFromUnix(*p.Timestamp),
		Member:    p.Member,
	}}, nil
}

func decodeUserUpdate(raw json.RawMessage) (Event, error) {
	u, err := reinterpret[types.User](TypeUserUpdate, raw)
	if err != nil {
		return nil, err
	}
	if u.ID.IsZero() {
		return nil, missingField(TypeUserUpdate, "id")
	}
	return UserUpdate{User: u}, nil
}

func decodeVoiceStateUpdate(raw json.RawMessage) (Event, error) {
	s, err := reinterpret[types.VoiceState](TypeVoiceStateUpdate, raw)
	if err != nil {
		return nil, err
	}
	if s.UserID.IsZero() {
		return nil, missingField(TypeVoiceStateUpdate, "user_id")
	}
	return VoiceStateUpdate{State: s}, nil
}

func decodeWebhooksUpdate(raw json.RawMessage) (Event, error) {
	var p struct {
		GuildID   types.GuildID   `json:"guild_id"`
		ChannelID types.ChannelID `json:"channel_id"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shapeError(TypeWebhooksUpdate, err)
	}
	if p.GuildID.IsZero() {
		return nil, missingField(TypeWebhooksUpdate, "guild_id")
	}
	if p.ChannelID.IsZero() {
		return nil, missingField(TypeWebhooksUpdate, "channel_id")
	}
	return WebhooksUpdate{GuildID: p.GuildID, ChannelID: p.ChannelID}, nil
}

func decodeAutoModerationActionExecution(raw json.RawMessage) (Event, error) {
	info, err := reinterpret[types.AutoModerationActionExecuteInfo](TypeAutoModerationActionExecution, raw)
	if err != nil {
		return nil, err
	}
	if info.GuildID.IsZero() {
		return nil, missingField(TypeAutoModerationActionExecution, "guild_id")
	}
	if info.RuleID.IsZero() {
		return nil, missingField(TypeAutoModerationActionExecution, "rule_id")
	}
	if info.UserID.IsZero() {
		return nil, missingField(TypeAutoModerationActionExecution, "user_id")
	}
	return AutoModerationActionExecution{Execution: info}, nil
}

// decodeUnknown is the catch-all rule. It stores the name and payload
// verbatim and attempts only a best-effort generic re-decode; absence of a
// known schema is not an error, so this rule never fails.
func decodeUnknown(name string, payload json.RawMessage) Unknown {
	u := Unknown{Name: name}
	if len(payload) > 0 {
		u.Raw = make(json.RawMessage, len(payload))
		copy(u.Raw, payload)

		var doc map[string]any
		if err := json.Unmarshal(payload, &doc); err == nil {
			u.Data = doc
		}
	}
	return u
}

// EventName returns the wire name of a decoded event, or "" for nil. Callers
// use it for logging without type-switching.
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.EventType()
}
