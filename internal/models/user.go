package models

import "time"

type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Games       []UserGame        `gorm:"foreignKey:UserID" json:"-"`
	Sessions    []GameSession     `gorm:"foreignKey:CreatorID" json:"-"`
	Attendances []SessionAttendee `gorm:"foreignKey:UserID" json:"-"`
}
