package models

import "time"

// GameSession is a scheduled play session. The creator is enrolled as an
// attendee with status "going" at creation time.
type GameSession struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	CreatorID       uint64    `gorm:"not null" json:"creator_id"`
	GameID          uint64    `gorm:"not null" json:"game_id"`
	SessionDatetime time.Time `gorm:"not null" json:"session_datetime"`
	Location        *string   `gorm:"type:varchar(255)" json:"location"`
	MaxPlayers      int       `gorm:"not null;default:4" json:"max_players"`
	Note            *string   `gorm:"type:text" json:"note"`
	CreatedAt       time.Time `json:"created_at"`

	// Relations
	Creator   User              `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Game      Game              `gorm:"foreignKey:GameID" json:"game,omitempty"`
	Attendees []SessionAttendee `gorm:"foreignKey:SessionID" json:"attendees,omitempty"`
}

// TableName keeps the historical table name.
func (GameSession) TableName() string {
	return "sessions"
}
