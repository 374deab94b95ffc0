package types

// ChannelType discriminates the kinds of channels the service exposes.
type ChannelType int

const (
	ChannelTypeGuildText ChannelType = iota
	ChannelTypeDM
	ChannelTypeGuildVoice
	ChannelTypeGroupDM
	ChannelTypeGuildCategory
	ChannelTypeGuildAnnouncement
)

// Thread-flavored channel types occupy a discontiguous range.
const (
	ChannelTypeAnnouncementThread ChannelType = 10
	ChannelTypePublicThread       ChannelType = 11
	ChannelTypePrivateThread      ChannelType = 12
	ChannelTypeGuildStageVoice    ChannelType = 13
	ChannelTypeGuildForum         ChannelType = 15
)

// IsThread reports whether the channel type is one of the thread variants.
func (t ChannelType) IsThread() bool {
	return t == ChannelTypeAnnouncementThread || t == ChannelTypePublicThread || t == ChannelTypePrivateThread
}

// PermissionOverwrite grants or denies a permission set to a role or member
// within one channel.
type PermissionOverwrite struct {
	ID    Snowflake `json:"id"`
	Type  int       `json:"type"` // 0 = role, 1 = member
	Allow string    `json:"allow"`
	Deny  string    `json:"deny"`
}

// ThreadMetadata carries the thread-specific fields of a thread channel.
type ThreadMetadata struct {
	Archived            bool      `json:"archived"`
	AutoArchiveDuration int       `json:"auto_archive_duration"`
	ArchiveTimestamp    Timestamp `json:"archive_timestamp"`
	Locked              bool      `json:"locked"`
	Invitable           bool      `json:"invitable,omitempty"`
	CreateTimestamp     Timestamp `json:"create_timestamp,omitempty"`
}

// Channel is a guild channel, DM channel, or thread. Threads reuse the same
// record with ThreadMetadata and ParentID populated.
//
// GuildID is absent on the wire for channels nested inside GUILD_CREATE (the
// service omits it as implied by the envelope); the decoder repairs those
// documents before structural decode, so a decoded Channel always carries its
// guild id except for DM channels, which have none.
type Channel struct {
	ID                   ChannelID             `json:"id"`
	Type                 ChannelType           `json:"type"`
	GuildID              GuildID               `json:"guild_id,omitempty"`
	Position             int                   `json:"position,omitempty"`
	PermissionOverwrites []PermissionOverwrite `json:"permission_overwrites,omitempty"`
	Name                 string                `json:"name,omitempty"`
	Topic                string                `json:"topic,omitempty"`
	NSFW                 bool                  `json:"nsfw,omitempty"`
	LastMessageID        MessageID             `json:"last_message_id,omitempty"`
	RateLimitPerUser     int                   `json:"rate_limit_per_user,omitempty"`
	Bitrate              int                   `json:"bitrate,omitempty"`
	UserLimit            int                   `json:"user_limit,omitempty"`
	Recipients           []User                `json:"recipients,omitempty"`
	OwnerID              UserID                `json:"owner_id,omitempty"`
	ParentID             ChannelID             `json:"parent_id,omitempty"`
	LastPinTimestamp     Timestamp             `json:"last_pin_timestamp,omitempty"`
	MessageCount         int                   `json:"message_count,omitempty"`
	MemberCount          int                   `json:"member_count,omitempty"`
	ThreadMetadata       *ThreadMetadata       `json:"thread_metadata,omitempty"`
}
