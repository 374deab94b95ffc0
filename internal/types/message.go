package types

// MessageType discriminates system messages from user content.
type MessageType int

const (
	MessageTypeDefault MessageType = 0
	MessageTypeReply   MessageType = 19
)

// Attachment is a file attached to a message.
type Attachment struct {
	ID          Snowflake `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int       `json:"size"`
	URL         string    `json:"url"`
	ProxyURL    string    `json:"proxy_url"`
	Height      *int      `json:"height,omitempty"`
	Width       *int      `json:"width,omitempty"`
}

// Embed is rich embedded content within a message. Only the fields the
// ingestion layer inspects are modeled; the service sends more.
type Embed struct {
	Title       string    `json:"title,omitempty"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
	Timestamp   Timestamp `json:"timestamp,omitempty"`
	Color       int       `json:"color,omitempty"`
}

// MessageReference points at the message a reply or crosspost refers to.
type MessageReference struct {
	MessageID MessageID `json:"message_id,omitempty"`
	ChannelID ChannelID `json:"channel_id,omitempty"`
	GuildID   GuildID   `json:"guild_id,omitempty"`
}

// Message is a chat message. It is the whole payload of MESSAGE_CREATE and
// MESSAGE_UPDATE (the latter may arrive partial; absent fields decode to
// zero values and the MessageID identifies the record being patched).
type Message struct {
	ID               MessageID         `json:"id"`
	ChannelID        ChannelID         `json:"channel_id"`
	GuildID          GuildID           `json:"guild_id,omitempty"`
	Author           *User             `json:"author,omitempty"`
	Member           *GuildMember      `json:"member,omitempty"`
	Content          string            `json:"content"`
	Timestamp        Timestamp         `json:"timestamp,omitempty"`
	EditedTimestamp  *Timestamp        `json:"edited_timestamp,omitempty"`
	TTS              bool              `json:"tts,omitempty"`
	MentionEveryone  bool              `json:"mention_everyone,omitempty"`
	Mentions         []User            `json:"mentions,omitempty"`
	MentionRoles     []RoleID          `json:"mention_roles,omitempty"`
	Attachments      []Attachment      `json:"attachments,omitempty"`
	Embeds           []Embed           `json:"embeds,omitempty"`
	Pinned           bool              `json:"pinned,omitempty"`
	WebhookID        WebhookID         `json:"webhook_id,omitempty"`
	Type             MessageType       `json:"type"`
	ApplicationID    ApplicationID     `json:"application_id,omitempty"`
	MessageReference *MessageReference `json:"message_reference,omitempty"`
	ReferencedMsg    *Message          `json:"referenced_message,omitempty"`
	Flags            int               `json:"flags,omitempty"`
}
