package models

// UserGame is the join row between a user and a game in their collection.
type UserGame struct {
	UserID           uint64 `gorm:"primarykey" json:"user_id"`
	GameID           uint64 `gorm:"primarykey" json:"game_id"`
	CompletionStatus string `gorm:"type:varchar(50);not null;default:'not_started'" json:"completion_status"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Game Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
}
