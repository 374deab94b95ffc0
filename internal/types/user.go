package types

// User is a service user account as delivered inside gateway payloads.
// Fields beyond the identifying core are optional on the wire and decode to
// their zero values when the service omits them.
type User struct {
	ID            UserID  `json:"id"`
	Username      string  `json:"username"`
	Discriminator string  `json:"discriminator,omitempty"`
	GlobalName    string  `json:"global_name,omitempty"`
	Avatar        string  `json:"avatar,omitempty"`
	Bot           bool    `json:"bot,omitempty"`
	System        bool    `json:"system,omitempty"`
	Locale        string  `json:"locale,omitempty"`
	Flags         int     `json:"flags,omitempty"`
	PublicFlags   int     `json:"public_flags,omitempty"`
	AccentColor   *int    `json:"accent_color,omitempty"`
	Banner        *string `json:"banner,omitempty"`
}

// GuildMember is a user's membership record within one guild. The embedded
// User is absent in some payloads (e.g. MESSAGE_CREATE member fields), so it
// is a pointer.
type GuildMember struct {
	User                       *User      `json:"user,omitempty"`
	Nick                       string     `json:"nick,omitempty"`
	Avatar                     string     `json:"avatar,omitempty"`
	Roles                      []RoleID   `json:"roles"`
	JoinedAt                   Timestamp  `json:"joined_at"`
	PremiumSince               *Timestamp `json:"premium_since,omitempty"`
	Deaf                       bool       `json:"deaf"`
	Mute                       bool       `json:"mute"`
	Pending                    bool       `json:"pending,omitempty"`
	CommunicationDisabledUntil *Timestamp `json:"communication_disabled_until,omitempty"`
}

// PresenceStatus is a user's coarse online state.
type PresenceStatus string

const (
	PresenceOnline    PresenceStatus = "online"
	PresenceIdle      PresenceStatus = "idle"
	PresenceDND       PresenceStatus = "dnd"
	PresenceOffline   PresenceStatus = "offline"
	PresenceInvisible PresenceStatus = "invisible"
)

// Activity is one entry of a presence's activity list (playing, streaming, ...).
type Activity struct {
	Name          string         `json:"name"`
	Type          int            `json:"type"`
	URL           string         `json:"url,omitempty"`
	State         string         `json:"state,omitempty"`
	Details       string         `json:"details,omitempty"`
	ApplicationID *ApplicationID `json:"application_id,omitempty"`
	CreatedAt     int64          `json:"created_at,omitempty"`
}

// ClientStatus carries per-platform presence states.
type ClientStatus struct {
	Desktop PresenceStatus `json:"desktop,omitempty"`
	Mobile  PresenceStatus `json:"mobile,omitempty"`
	Web     PresenceStatus `json:"web,omitempty"`
}

// Presence is a user's realtime presence within a guild. It is both a nested
// record of GuildCreateData and the whole payload of PRESENCE_UPDATE.
type Presence struct {
	User         User           `json:"user"`
	GuildID      GuildID        `json:"guild_id,omitempty"`
	Status       PresenceStatus `json:"status"`
	Activities   []Activity     `json:"activities,omitempty"`
	ClientStatus ClientStatus   `json:"client_status"`
}
