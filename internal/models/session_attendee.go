package models

// RSVP status values. RsvpStatus is free text on the wire; these are the
// conventional values the RSVP listing sorts by.
const (
	RsvpStatusGoing   = "going"
	RsvpStatusPending = "pending"
	RsvpStatusCantGo  = "cant_go"
)

type SessionAttendee struct {
	SessionID  uint64 `gorm:"primarykey" json:"session_id"`
	UserID     uint64 `gorm:"primarykey" json:"user_id"`
	RsvpStatus string `gorm:"type:varchar(50);not null" json:"rsvp_status"`
	Attended   bool   `gorm:"not null;default:false" json:"attended"`

	// Relations
	Session GameSession `gorm:"foreignKey:SessionID" json:"-"`
	User    User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
