package models

type FriendStatus string

const (
	FriendStatusAccepted FriendStatus = "accepted"
	FriendStatusPending  FriendStatus = "pending"
)

// Friend is a one-directional friendship row: user1 added user2. Reads treat
// the relation as symmetric; the reverse row is never written. The composite
// unique index makes the insert-or-ignore add deterministic.
type Friend struct {
	ID      uint64       `gorm:"primarykey" json:"id"`
	User1ID uint64       `gorm:"uniqueIndex:idx_friends_pair;not null" json:"user1_id"`
	User2ID uint64       `gorm:"uniqueIndex:idx_friends_pair;not null" json:"user2_id"`
	Status  FriendStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Relations
	User1 User `gorm:"foreignKey:User1ID" json:"-"`
	User2 User `gorm:"foreignKey:User2ID" json:"-"`
}
