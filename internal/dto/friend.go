package dto

import (
	"github.com/lfgconnect/lfg-api/internal/models"
)

// FriendDTO represents a friend with profile fields in API responses
type FriendDTO struct {
	ID       uint64              `json:"id"`
	Username string              `json:"username"`
	Email    string              `json:"email"`
	Status   models.FriendStatus `json:"status"`
}

// ToFriendDTO converts a friendship row to the other party's FriendDTO.
// selfID picks which column holds the caller.
func ToFriendDTO(friend models.Friend, selfID uint64) FriendDTO {
	other := friend.User2
	if friend.User2ID == selfID {
		other = friend.User1
	}

	return FriendDTO{
		ID:       other.ID,
		Username: other.Username,
		Email:    other.Email,
		Status:   friend.Status,
	}
}

// ToFriendDTOs converts a slice of friendship rows
func ToFriendDTOs(friends []models.Friend, selfID uint64) []FriendDTO {
	items := make([]FriendDTO, len(friends))
	for i, friend := range friends {
		items[i] = ToFriendDTO(friend, selfID)
	}
	return items
}
