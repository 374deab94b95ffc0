package events

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsegate/internal/types"
)

func mustDecode(t *testing.T, name string, payload string) Event {
	t.Helper()
	ev, err := Decode(name, json.RawMessage(payload))
	require.NoError(t, err)
	require.NotNil(t, ev)
	return ev
}

func TestDecode_Ready(t *testing.T) {
	payload := `{
		"v": 10,
		"user": {"id": "80351110224678912", "username": "nelly", "bot": true},
		"session_id": "sess-abc-123",
		"resume_gateway_url": "wss://gateway-us-east1-b.example.gg/",
		"guilds": [
			{"id": "41771983423143937", "unavailable": true},
			{"id": "41771983423143938", "unavailable": true}
		],
		"application": {"id": "80351110224678912", "flags": 565248}
	}`

	ev := mustDecode(t, TypeReady, payload)
	ready, ok := ev.(Ready)
	require.True(t, ok, "expected Ready, got %T", ev)

	assert.Equal(t, 10, ready.Version)
	assert.Equal(t, "nelly", ready.User.Username)
	assert.True(t, ready.User.Bot)
	assert.Equal(t, "sess-abc-123", ready.SessionID)
	assert.Len(t, ready.Guilds, 2)
	assert.True(t, ready.Guilds[0].Unavailable)
	assert.Equal(t, TypeReady, ready.EventType())
}

func TestDecode_Ready_ResumeHostDerivation(t *testing.T) {
	tests := []struct {
		name     string
		wireURL  string
		expected string
	}{
		{"scheme and trailing slash", "wss://gateway-us-east1-b.example.gg/", "gateway-us-east1-b.example.gg"},
		{"scheme only", "wss://gateway.example.gg", "gateway.example.gg"},
		{"trailing slash only", "gateway.example.gg/", "gateway.example.gg"},
		{"bare host passes through", "gateway.example.gg", "gateway.example.gg"},
		{"absent field", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := fmt.Sprintf(`{
				"v": 10,
				"user": {"id": "1"},
				"session_id": "s",
				"resume_gateway_url": %q
			}`, tt.wireURL)

			ev := mustDecode(t, TypeReady, payload)
			ready := ev.(Ready)
			assert.Equal(t, tt.expected, ready.ResumeGatewayHost)
		})
	}
}

func TestDecode_Ready_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{"no user", `{"v": 10, "session_id": "s"}`, "user"},
		{"no session id", `{"v": 10, "user": {"id": "1"}}`, "session_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(TypeReady, json.RawMessage(tt.payload))
			require.Error(t, err)

			decErr, ok := types.IsDecodeError(err)
			require.True(t, ok, "expected DecodeError, got %T", err)
			assert.Equal(t, TypeReady, decErr.Event)
			assert.Equal(t, tt.field, decErr.Field)
			assert.Equal(t, types.ErrCodeDecodeMissingField, decErr.Code)
		})
	}
}

func TestDecode_Resumed(t *testing.T) {
	ev := mustDecode(t, TypeResumed, `null`)
	_, ok := ev.(Resumed)
	assert.True(t, ok)
}

func TestDecode_ChannelEvents_WholePayload(t *testing.T) {
	payload := `{
		"id": "399942396007890945",
		"type": 0,
		"guild_id": "41771983423143937",
		"name": "general",
		"topic": "chat",
		"position": 3
	}`

	tests := []struct {
		event   string
		extract func(Event) types.Channel
	}{
		{TypeChannelCreate, func(ev Event) types.Channel { return ev.(ChannelCreate).Channel }},
		{TypeChannelUpdate, func(ev Event) types.Channel { return ev.(ChannelUpdate).Channel }},
		{TypeChannelDelete, func(ev Event) types.Channel { return ev.(ChannelDelete).Channel }},
		{TypeThreadCreate, func(ev Event) types.Channel { return ev.(ThreadCreate).Thread }},
		{TypeThreadUpdate, func(ev Event) types.Channel { return ev.(ThreadUpdate).Thread }},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			ev := mustDecode(t, tt.event, payload)
			require.Equal(t, tt.event, ev.EventType())

			ch := tt.extract(ev)
			assert.Equal(t, "general", ch.Name)
			assert.Equal(t, "41771983423143937", ch.GuildID.String())
			assert.Equal(t, 3, ch.Position)
		})
	}
}

func TestDecode_ChannelCreate_MissingID(t *testing.T) {
	_, err := Decode(TypeChannelCreate, json.RawMessage(`{"name": "general"}`))
	require.Error(t, err)

	decErr, ok := types.IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "id", decErr.Field)
}

func TestDecode_ChannelPinsUpdate(t *testing.T) {
	payload := `{
		"guild_id": "41771983423143937",
		"channel_id": "399942396007890945",
		"last_pin_timestamp": "2025-06-15T09:27:40.000000+00:00"
	}`

	ev := mustDecode(t, TypeChannelPinsUpdate, payload)
	pins := ev.(ChannelPinsUpdate)

	assert.Equal(t, "399942396007890945", pins.ChannelID.String())
	require.False(t, pins.LastPinTimestamp.IsZero())
	assert.Equal(t, 2025, pins.LastPinTimestamp.Year())
	assert.Equal(t, time.June, pins.LastPinTimestamp.Month())
}

func TestDecode_ChannelPinsUpdate_LenientTimestamp(t *testing.T) {
	// last_pin_timestamp is informational: absent, null, and malformed
	// values all decode to the zero timestamp without failing the event.
	tests := []struct {
		name    string
		payload string
	}{
		{"absent", `{"channel_id": "399942396007890945"}`},
		{"null", `{"channel_id": "399942396007890945", "last_pin_timestamp": null}`},
		{"not a date", `{"channel_id": "399942396007890945", "last_pin_timestamp": "not-a-date"}`},
		{"wrong type", `{"channel_id": "399942396007890945", "last_pin_timestamp": 12345}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := mustDecode(t, TypeChannelPinsUpdate, tt.payload)
			pins := ev.(ChannelPinsUpdate)
			assert.True(t, pins.LastPinTimestamp.IsZero())
		})
	}
}

func TestDecode_ChannelPinsUpdate_MissingChannelID(t *testing.T) {
	_, err := Decode(TypeChannelPinsUpdate, json.RawMessage(`{"guild_id": "1"}`))
	require.Error(t, err)

	decErr, ok := types.IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "channel_id", decErr.Field)
}

func TestDecode_GuildCreate_InjectsGuildID(t *testing.T) {
	payload := `{
		"id": "41771983423143937",
		"name": "discord developers",
		"member_count": 3,
		"joined_at": "2025-01-10T12:00:00Z",
		"large": false,
		"channels": [
			{"id": "100", "type": 0, "name": "general"},
			{"id": "101", "type": 2, "name": "voice"}
		],
		"threads": [
			{"id": "200", "type": 11, "name": "a-thread"}
		]
	}`

	ev := mustDecode(t, TypeGuildCreate, payload)
	gc := ev.(GuildCreate)

	assert.Equal(t, "discord developers", gc.Guild.Name)
	assert.Equal(t, 3, gc.Guild.MemberCount)

	require.Len(t, gc.Guild.Channels, 2)
	for _, ch := range gc.Guild.Channels {
		assert.Equal(t, "41771983423143937", ch.GuildID.String(),
			"channel %s must carry the enclosing guild id", ch.ID)
	}

	require.Len(t, gc.Guild.Threads, 1)
	assert.Equal(t, "41771983423143937", gc.Guild.Threads[0].GuildID.String())
	assert.True(t, gc.Guild.Threads[0].Type.IsThread())
}

func TestDecode_GuildCreate_EmptyAndAbsentCollections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty arrays", `{"id": "1", "name": "g", "channels": [], "threads": []}`},
		{"absent arrays", `{"id": "1", "name": "g"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := mustDecode(t, TypeGuildCreate, tt.payload)
			gc := ev.(GuildCreate)
			assert.Empty(t, gc.Guild.Channels)
			assert.Empty(t, gc.Guild.Threads)
		})
	}
}

func TestDecode_GuildCreate_PreservesExistingGuildID(t *testing.T) {
	// An element already carrying guild_id keeps its value.
	payload := `{
		"id": "41771983423143937",
		"name": "g",
		"channels": [{"id": "100", "type": 0, "guild_id": "99999"}]
	}`

	ev := mustDecode(t, TypeGuildCreate, payload)
	gc := ev.(GuildCreate)
	require.Len(t, gc.Guild.Channels, 1)
	assert.Equal(t, "99999", gc.Guild.Channels[0].GuildID.String())
}

func TestDecode_GuildCreate_MissingID(t *testing.T) {
	_, err := Decode(TypeGuildCreate, json.RawMessage(`{"name": "g"}`))
	require.Error(t, err)

	decErr, ok := types.IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "id", decErr.Field)
	assert.Equal(t, types.ErrCodeDecodeMissingField, decErr.Code)
}

func TestDecode_GuildCreate_NestedNotObjects(t *testing.T) {
	payload := `{"id": "1", "channels": ["not-an-object"]}`
	_, err := Decode(TypeGuildCreate, json.RawMessage(payload))
	require.Error(t, err)

	decErr, ok := types.IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "channels", decErr.Field)
	assert.Equal(t, types.ErrCodeDecodeWrongShape, decErr.Code)
}

func TestDecode_GuildDelete(t *testing.T) {
	ev := mustDecode(t, TypeGuildDelete, `{"id": "41771983423143937", "unavailable": true}`)
	gd := ev.(GuildDelete)
	assert.Equal(t, "41771983423143937", gd.Guild.ID.String())
	assert.True(t, gd.Guild.Unavailable)
}

func TestDecode_BanEvents_Projection(t *testing.T) {
	payload := `{
		"guild_id": "41771983423143937",
		"user": {"id": "53908099506183680", "username": "mason"}
	}`

	addEv := mustDecode(t, TypeGuildBanAdd, payload)
	add := addEv.(GuildBanAdd)
	assert.Equal(t, "41771983423143937", add.GuildID.String())
	assert.Equal(t, "mason", add.User.Username)

	removeEv := mustDecode(t, TypeGuildBanRemove, payload)
	remove := removeEv.(GuildBanRemove)
	assert.Equal(t, add.GuildID, remove.GuildID)
	assert.Equal(t, add.User, remove.User)
}

func TestDecode_GuildBanAdd_MissingUser(t *testing.T) {
	_, err := Decode(TypeGuildBanAdd, json.RawMessage(`{"guild_id": "41771983423143937"}`))
	require.Error(t, err)

	decErr, ok := types.IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, TypeGuildBanAdd, decErr.Event)
	assert.Equal(t, "user", decErr.Field)
}

func TestDecode_GuildMemberAdd(t *testing.T) {
	payload := `{
		"guild_id": "41771983423143937",
		"user": {"id": "53908099506183680", "username": "mason"},
		"nick": "masonator",
		"roles": ["41771983423143936"],
		"joined_at": "2025-01-10T12:00:00Z"
	}`

	ev := mustDecode(t, TypeGuildMemberAdd, payload)
	add := ev.(GuildMemberAdd)
	assert.Equal(t, "41771983423143937", add.GuildID.String())
	require.NotNil(t, add.Member.User)
	assert.Equal(t, "mason", add.Member.User.Username)
	assert.Equal(t, "masonator", add.Member.Nick)
	assert.Len(t, add.Member.Roles, 1)
}

func TestDecode_GuildRoleDelete(t *testing.T) {
	ev := mustDecode(t, TypeGuildRoleDelete, `{"guild_id": "1", "role_id": "2"}`)
	del := ev.(GuildRoleDelete)
	assert.Equal(t, "1", del.GuildID.String())
	assert.Equal(t, "2", del.RoleID.String())
}

func TestDecode_MessageCreate(t *testing.T) {
	payload := `{
		"id": "334385199974967042",
		"channel_id": "290926798999357250",
		"guild_id": "41771983423143937",
		"author": {"id": "53908099506183680", "username": "mason"},
		"content": "supa hot",
		"timestamp": "2025-07-11T17:27:07.299000+00:00",
		"tts": false,
		"type": 0
	}`

	ev := mustDecode(t, TypeMessageCreate, payload)
	mc := ev.(MessageCreate)

	assert.Equal(t, "334385199974967042", mc.Message.ID.String())
	assert.Equal(t, "supa hot", mc.Message.Content)
	require.NotNil(t, mc.Message.Author)
	assert.Equal(t, "mason", mc.Message.Author.Username)
	assert.False(t, mc.Message.Timestamp.IsZero())
}

func TestDecode_MessageUpdate_PartialPayload(t *testing.T) {
	// Edits may ship only the changed fields plus the identifying pair.
	payload := `{"id": "334385199974967042", "channel_id": "290926798999357250", "content": "edited"}`

	ev := mustDecode(t, TypeMessageUpdate, payload)
	mu := ev.(MessageUpdate)
	assert.Equal(t, "edited", mu.Message.Content)
	assert.Nil(t, mu.Message.Author)
}

func TestDecode_MessageDeleteBulk(t *testing.T) {
	payload := `{"ids": ["1", "2", "3"], "channel_id": "290926798999357250"}`

	ev := mustDecode(t, TypeMessageDeleteBulk, payload)
	bulk := ev.(MessageDeleteBulk)
	assert.Len(t, bulk.IDs, 3)
	assert.Equal(t, "290926798999357250", bulk.ChannelID.String())

	_, err := Decode(TypeMessageDeleteBulk, json.RawMessage(`{"ids": [], "channel_id": "1"}`))
	require.Error(t, err)
}

func TestDecode_ReactionEvents(t *testing.T) {
	payload := `{
		"user_id": "53908099506183680",
		"channel_id": "290926798999357250",
		"message_id": "334385199974967042",
		"guild_id": "41771983423143937",
		"emoji": {"id": null, "name": "🔥"}
	}`

	ev := mustDecode(t, TypeMessageReactionAdd, payload)
	add := ev.(MessageReactionAdd)
	assert.Equal(t, "🔥", add.Reaction.Emoji.Name)
	assert.Equal(t, "53908099506183680", add.Reaction.UserID.String())

	ev = mustDecode(t, TypeMessageReactionRemove, payload)
	remove := ev.(MessageReactionRemove)
	assert.Equal(t, add.Reaction, remove.Reaction)
}

func TestDecode_ReactionRemoveEmoji_RequiresEmoji(t *testing.T) {
	payload := `{"channel_id": "1", "message_id": "2"}`
	_, err := Decode(TypeMessageReactionRemoveEmoji, json.RawMessage(payload))
	require.Error(t, err)

	decErr, ok := types.IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "emoji", decErr.Field)
}

func TestDecode_TypingStart_EpochConversion(t *testing.T) {
	payload := `{
		"channel_id": "290926798999357250",
		"guild_id": "41771983423143937",
		"user_id": "53908099506183680",
		"timestamp": 1700000000
	}`

	ev := mustDecode(t, TypeTypingStart, payload)
	ts := ev.(TypingStart)

	expected := time.Unix(1700000000, 0).UTC()
	assert.True(t, ts.Typing.Timestamp.Equal(expected),
		"timestamp = %v, want %v", ts.Typing.Timestamp, expected)
}

func TestDecode_TypingStart_MissingTimestamp(t *testing.T) {
	payload := `{"channel_id": "1", "user_id": "2"}`
	_, err := Decode(TypeTypingStart, json.RawMessage(payload))
	require.Error(t, err)

	decErr, ok := types.IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "timestamp", decErr.Field)
}

func TestDecode_VoiceStateUpdate(t *testing.T) {
	payload := `{
		"guild_id": "41771983423143937",
		"channel_id": "290926798999357250",
		"user_id": "53908099506183680",
		"session_id": "vs-session",
		"self_mute": true
	}`

	ev := mustDecode(t, TypeVoiceStateUpdate, payload)
	vs := ev.(VoiceStateUpdate)
	assert.Equal(t, "vs-session", vs.State.SessionID)
	assert.True(t, vs.State.SelfMute)
}

func TestDecode_AutoModerationActionExecution(t *testing.T) {
	payload := `{
		"guild_id": "41771983423143937",
		"action": {"type": 1, "metadata": {}},
		"rule_id": "94385199974967042",
		"rule_trigger_type": 1,
		"user_id": "53908099506183680",
		"content": "bad words",
		"matched_keyword": "bad"
	}`

	ev := mustDecode(t, TypeAutoModerationActionExecution, payload)
	exec := ev.(AutoModerationActionExecution)
	assert.Equal(t, "94385199974967042", exec.Execution.RuleID.String())
	assert.Equal(t, "bad", exec.Execution.MatchedKeyword)
}

func TestDecode_UnknownName_NeverFails(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"object payload", `{"stage_instance": {"id": "1"}, "topic": "hello"}`},
		{"array payload", `[1, 2, 3]`},
		{"scalar payload", `42`},
		{"null payload", `null`},
		{"empty payload", ``},
		{"malformed payload", `{"unterminated`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := Decode("STAGE_INSTANCE_CREATE", json.RawMessage(tt.payload))
			require.NoError(t, err, "unknown names must never fail")

			unk, ok := ev.(Unknown)
			require.True(t, ok, "expected Unknown, got %T", ev)
			assert.Equal(t, "STAGE_INSTANCE_CREATE", unk.Name)
			assert.Equal(t, "STAGE_INSTANCE_CREATE", unk.EventType())
			assert.Equal(t, tt.payload, string(unk.Raw))
		})
	}
}

func TestDecode_Unknown_GenericDocument(t *testing.T) {
	ev, err := Decode("SOME_FUTURE_EVENT", json.RawMessage(`{"a": 1, "b": "two"}`))
	require.NoError(t, err)

	unk := ev.(Unknown)
	require.NotNil(t, unk.Data)
	assert.Equal(t, float64(1), unk.Data["a"])
	assert.Equal(t, "two", unk.Data["b"])
}

func TestDecode_Unknown_RawIsACopy(t *testing.T) {
	payload := json.RawMessage(`{"a": 1}`)
	ev, err := Decode("SOME_FUTURE_EVENT", payload)
	require.NoError(t, err)

	payload[2] = 'x'
	unk := ev.(Unknown)
	assert.Equal(t, `{"a": 1}`, string(unk.Raw), "mutating the input must not affect the decoded event")
}

func TestDecode_CaseSensitiveNames(t *testing.T) {
	// Names match exactly; a lowercase variant is a different, unknown name.
	ev, err := Decode("message_create", json.RawMessage(`{"id": "1", "channel_id": "2"}`))
	require.NoError(t, err)
	_, ok := ev.(Unknown)
	assert.True(t, ok)
}

func TestDecode_WrongShape_ReportsField(t *testing.T) {
	// channel_id as an array is a shape violation, not a missing field.
	_, err := Decode(TypeWebhooksUpdate, json.RawMessage(`{"guild_id": "1", "channel_id": [1]}`))
	require.Error(t, err)

	decErr, ok := types.IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeDecodeWrongShape, decErr.Code)
}

func TestDecode_IsPure(t *testing.T) {
	// Same inputs, same output, regardless of what decoded before.
	payload := json.RawMessage(`{"guild_id": "1", "user": {"id": "2", "username": "a"}}`)

	first := mustDecode(t, TypeGuildBanAdd, string(payload))

	_, err := Decode(TypeGuildBanAdd, json.RawMessage(`{"guild_id": "1"}`))
	require.Error(t, err)

	second := mustDecode(t, TypeGuildBanAdd, string(payload))
	assert.Equal(t, first, second)
}

func TestRecognized(t *testing.T) {
	assert.True(t, Recognized(TypeMessageCreate))
	assert.True(t, Recognized(TypeGuildCreate))
	assert.False(t, Recognized("STAGE_INSTANCE_CREATE"))
	assert.False(t, Recognized("message_create"))
}

func TestEventName(t *testing.T) {
	assert.Equal(t, TypeResumed, EventName(Resumed{}))
	assert.Equal(t, "WHATEVER", EventName(Unknown{Name: "WHATEVER"}))
	assert.Equal(t, "", EventName(nil))
}

func TestEveryTableEntryDecodesItsOwnType(t *testing.T) {
	// Each table entry must produce a variant whose EventType matches the
	// key it decodes under.
	payloads := map[string]string{
		TypeReady:                         `{"v": 10, "user": {"id": "1"}, "session_id": "s"}`,
		TypeResumed:                       `null`,
		TypeChannelCreate:                 `{"id": "1", "type": 0}`,
		TypeChannelUpdate:                 `{"id": "1", "type": 0}`,
		TypeChannelDelete:                 `{"id": "1", "type": 0}`,
		TypeChannelPinsUpdate:             `{"channel_id": "1"}`,
		TypeThreadCreate:                  `{"id": "1", "type": 11}`,
		TypeThreadUpdate:                  `{"id": "1", "type": 11}`,
		TypeThreadDelete:                  `{"id": "1", "guild_id": "2", "parent_id": "3", "type": 11}`,
		TypeGuildCreate:                   `{"id": "1", "name": "g"}`,
		TypeGuildUpdate:                   `{"id": "1", "name": "g"}`,
		TypeGuildDelete:                   `{"id": "1", "unavailable": true}`,
		TypeGuildBanAdd:                   `{"guild_id": "1", "user": {"id": "2"}}`,
		TypeGuildBanRemove:                `{"guild_id": "1", "user": {"id": "2"}}`,
		TypeGuildEmojisUpdate:             `{"guild_id": "1", "emojis": []}`,
		TypeGuildMemberAdd:                `{"guild_id": "1", "user": {"id": "2"}}`,
		TypeGuildMemberRemove:             `{"guild_id": "1", "user": {"id": "2"}}`,
		TypeGuildMemberUpdate:             `{"guild_id": "1", "user": {"id": "2"}, "roles": []}`,
		TypeGuildRoleCreate:               `{"guild_id": "1", "role": {"id": "2", "name": "r"}}`,
		TypeGuildRoleUpdate:               `{"guild_id": "1", "role": {"id": "2", "name": "r"}}`,
		TypeGuildRoleDelete:               `{"guild_id": "1", "role_id": "2"}`,
		TypeInviteCreate:                  `{"channel_id": "1", "code": "abc"}`,
		TypeInviteDelete:                  `{"channel_id": "1", "code": "abc"}`,
		TypeMessageCreate:                 `{"id": "1", "channel_id": "2"}`,
		TypeMessageUpdate:                 `{"id": "1", "channel_id": "2"}`,
		TypeMessageDelete:                 `{"id": "1", "channel_id": "2"}`,
		TypeMessageDeleteBulk:             `{"ids": ["1"], "channel_id": "2"}`,
		TypeMessageReactionAdd:            `{"user_id": "1", "channel_id": "2", "message_id": "3", "emoji": {"name": "x"}}`,
		TypeMessageReactionRemove:         `{"user_id": "1", "channel_id": "2", "message_id": "3", "emoji": {"name": "x"}}`,
		TypeMessageReactionRemoveAll:      `{"channel_id": "1", "message_id": "2"}`,
		TypeMessageReactionRemoveEmoji:    `{"channel_id": "1", "message_id": "2", "emoji": {"name": "x"}}`,
		TypePresenceUpdate:                `{"user": {"id": "1"}, "status": "online"}`,
		TypeTypingStart:                   `{"channel_id": "1", "user_id": "2", "timestamp": 1700000000}`,
		TypeUserUpdate:                    `{"id": "1", "username": "u"}`,
		TypeVoiceStateUpdate:              `{"user_id": "1", "session_id": "s"}`,
		TypeWebhooksUpdate:                `{"guild_id": "1", "channel_id": "2"}`,
		TypeAutoModerationActionExecution: `{"guild_id": "1", "action": {"type": 1}, "rule_id": "2", "user_id": "3"}`,
	}

	require.Len(t, payloads, len(eventDecoders), "every table entry needs a fixture")

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			require.True(t, Recognized(name))
			ev := mustDecode(t, name, payload)
			assert.Equal(t, name, ev.EventType())
			_, isUnknown := ev.(Unknown)
			assert.False(t, isUnknown, "recognized names must not decode to Unknown")
		})
	}
}
