package main

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"pulsegate/internal/events"
	"pulsegate/internal/types"
)

// maxContentPreview bounds the message excerpt included in a line.
const maxContentPreview = 80

// formatLine renders one decoded event as a single self-contained text line.
// Every line starts with the wire event name; the rest is a short key=value
// summary of the fields a human tailing the stream cares about.
func formatLine(ev events.Event) string {
	switch e := ev.(type) {
	case events.Ready:
		return fmt.Sprintf("%s user=%s session=%s guilds=%d resume_host=%s",
			e.EventType(), userLabel(e.User), e.SessionID, len(e.Guilds), e.ResumeGatewayHost)

	case events.Resumed:
		return e.EventType()

	case events.MessageCreate:
		return fmt.Sprintf("%s guild=%s channel=%s author=%s content=%q",
			e.EventType(), e.Message.GuildID, e.Message.ChannelID,
			authorLabel(e.Message.Author), preview(e.Message.Content))

	case events.MessageUpdate:
		return fmt.Sprintf("%s channel=%s message=%s content=%q",
			e.EventType(), e.Message.ChannelID, e.Message.ID, preview(e.Message.Content))

	case events.MessageDelete:
		return fmt.Sprintf("%s channel=%s message=%s", e.EventType(), e.ChannelID, e.ID)

	case events.MessageDeleteBulk:
		return fmt.Sprintf("%s channel=%s count=%d", e.EventType(), e.ChannelID, len(e.IDs))

	case events.MessageReactionAdd:
		return fmt.Sprintf("%s channel=%s message=%s user=%s emoji=%s",
			e.EventType(), e.Reaction.ChannelID, e.Reaction.MessageID,
			e.Reaction.UserID, e.Reaction.Emoji.Name)

	case events.MessageReactionRemove:
		return fmt.Sprintf("%s channel=%s message=%s user=%s emoji=%s",
			e.EventType(), e.Reaction.ChannelID, e.Reaction.MessageID,
			e.Reaction.UserID, e.Reaction.Emoji.Name)

	case events.GuildCreate:
		return fmt.Sprintf("%s guild=%s name=%q channels=%d threads=%d members=%d",
			e.EventType(), e.Guild.ID, e.Guild.Name,
			len(e.Guild.Channels), len(e.Guild.Threads), e.Guild.MemberCount)

	case events.GuildDelete:
		return fmt.Sprintf("%s guild=%s unavailable=%t", e.EventType(), e.Guild.ID, e.Guild.Unavailable)

	case events.GuildMemberAdd:
		return fmt.Sprintf("%s guild=%s user=%s", e.EventType(), e.GuildID, memberLabel(e.Member))

	case events.GuildMemberRemove:
		return fmt.Sprintf("%s guild=%s user=%s", e.EventType(), e.GuildID, userLabel(e.User))

	case events.GuildBanAdd:
		return fmt.Sprintf("%s guild=%s user=%s", e.EventType(), e.GuildID, userLabel(e.User))

	case events.GuildBanRemove:
		return fmt.Sprintf("%s guild=%s user=%s", e.EventType(), e.GuildID, userLabel(e.User))

	case events.ChannelCreate:
		return fmt.Sprintf("%s guild=%s channel=%s name=%q", e.EventType(), e.Channel.GuildID, e.Channel.ID, e.Channel.Name)

	case events.ChannelDelete:
		return fmt.Sprintf("%s guild=%s channel=%s name=%q", e.EventType(), e.Channel.GuildID, e.Channel.ID, e.Channel.Name)

	case events.ChannelPinsUpdate:
		return fmt.Sprintf("%s channel=%s last_pin=%s", e.EventType(), e.ChannelID, timestampLabel(e.LastPinTimestamp))

	case events.TypingStart:
		return fmt.Sprintf("%s channel=%s user=%s at=%s",
			e.EventType(), e.Typing.ChannelID, e.Typing.UserID, timestampLabel(e.Typing.Timestamp))

	case events.VoiceStateUpdate:
		return fmt.Sprintf("%s guild=%s channel=%s user=%s",
			e.EventType(), e.State.GuildID, e.State.ChannelID, e.State.UserID)

	case events.Unknown:
		return fmt.Sprintf("%s (unrecognized, %d bytes)", e.Name, len(e.Raw))

	default:
		return ev.EventType()
	}
}

// preview trims message content to one printable excerpt. The cut backs off
// to a rune boundary so multi-byte characters never split.
func preview(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) <= maxContentPreview {
		return content
	}
	cut := maxContentPreview
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "..."
}

// userLabel prefers the username, falling back to the id.
func userLabel(u types.User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.ID.String()
}

// authorLabel handles the optional author record on messages.
func authorLabel(u *types.User) string {
	if u == nil {
		return "unknown"
	}
	return userLabel(*u)
}

// memberLabel handles the optional user record on membership payloads.
func memberLabel(m types.GuildMember) string {
	if m.User == nil {
		return "unknown"
	}
	return userLabel(*m.User)
}

// timestampLabel renders a possibly-zero timestamp.
func timestampLabel(ts types.Timestamp) string {
	if ts.IsZero() {
		return "none"
	}
	return ts.UTC().Format(time.RFC3339)
}
