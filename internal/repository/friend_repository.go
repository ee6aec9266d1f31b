package repository

import (
	"github.com/lfgconnect/lfg-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFriendRepository is a GORM implementation of FriendRepository
type GormFriendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new FriendRepository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &GormFriendRepository{db: db}
}

// Add inserts the friendship row. A duplicate (user1, user2) pair hits the
// unique pair index and is ignored; any other failure is returned.
func (r *GormFriendRepository) Add(friend *models.Friend) error {
	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(friend).Error
}

// ListAccepted lists accepted friendships where either column holds userID
func (r *GormFriendRepository) ListAccepted(userID uint64) ([]models.Friend, error) {
	var friends []models.Friend
	err := r.db.
		Preload("User1").
		Preload("User2").
		Where("(user1_id = ? OR user2_id = ?) AND status = ?", userID, userID, models.FriendStatusAccepted).
		Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}
