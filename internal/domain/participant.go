package domain

const (
	DefaultDisplayName = "Anonymous"
	MaxDisplayNameLen  = 36
)

// Participant is a user's membership meta inside a single room.
// No transport or lifecycle logic here.
type Participant struct {
	UserID      string `json:"id"`
	DisplayName string `json:"name"`
}

// NewParticipant avoids raw literals in adapters and keeps the
// defaulting rules in one place.
func NewParticipant(userID, displayName string) *Participant {
	if displayName == "" {
		displayName = DefaultDisplayName
	}
	if len(displayName) > MaxDisplayNameLen {
		displayName = displayName[:MaxDisplayNameLen]
	}
	return &Participant{UserID: userID, DisplayName: displayName}
}
