package services

import (
	"errors"
	"fmt"

	"github.com/lfgconnect/lfg-api/internal/models"
	"github.com/lfgconnect/lfg-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrFriendNotFound = errors.New("user not found")
	ErrSelfFriend     = errors.New("cannot add yourself as friend")
)

// FriendService handles friendship business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
	gameRepo   repository.GameRepository
}

// NewFriendService creates a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository, gameRepo repository.GameRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		gameRepo:   gameRepo,
	}
}

// AddFriend records a one-directional friendship from userID to the user
// holding friendEmail. Adding the same friend twice is a no-op; the reverse
// row is never written.
func (s *FriendService) AddFriend(userID uint64, friendEmail string) (*models.User, error) {
	friend, err := s.userRepo.FindByEmail(friendEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if friend.ID == userID {
		return nil, ErrSelfFriend
	}

	row := &models.Friend{
		User1ID: userID,
		User2ID: friend.ID,
		Status:  models.FriendStatusAccepted,
	}
	if err := s.friendRepo.Add(row); err != nil {
		return nil, fmt.Errorf("failed to add friend: %w", err)
	}

	return friend, nil
}

// ListFriends lists accepted friendships visible from either column.
func (s *FriendService) ListFriends(userID uint64) ([]models.Friend, error) {
	friends, err := s.friendRepo.ListAccepted(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch friends: %w", err)
	}
	return friends, nil
}

// ListFriendGames returns the friend's full collection. No friendship check
// is performed; any id pair works.
func (s *FriendService) ListFriendGames(friendID uint64) ([]models.UserGame, error) {
	entries, err := s.gameRepo.ListCollection(friendID, repository.CollectionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch friend games: %w", err)
	}
	return entries, nil
}
