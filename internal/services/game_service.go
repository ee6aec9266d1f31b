package services

import (
	"fmt"

	"github.com/lfgconnect/lfg-api/internal/models"
	"github.com/lfgconnect/lfg-api/internal/repository"
)

// GameService handles game collection business logic.
type GameService struct {
	gameRepo repository.GameRepository
}

// NewGameService creates a new GameService.
func NewGameService(gameRepo repository.GameRepository) *GameService {
	return &GameService{
		gameRepo: gameRepo,
	}
}

// AddGameInput represents input for adding a game to a collection.
type AddGameInput struct {
	UserID      uint64
	Title       string
	Platform    *string
	Genre       *string
	ReleaseYear *int
}

// AddGame adds a game to the user's collection, creating the game row on
// first add by anyone. Re-adding resets the completion status to not_started.
func (s *GameService) AddGame(input AddGameInput) (uint64, error) {
	game := &models.Game{
		Title:       input.Title,
		Platform:    input.Platform,
		Genre:       input.Genre,
		ReleaseYear: input.ReleaseYear,
	}

	gameID, err := s.gameRepo.AddToCollection(input.UserID, game)
	if err != nil {
		return 0, fmt.Errorf("failed to add game: %w", err)
	}
	return gameID, nil
}

// ListUserGames lists a user's collection. Any caller may read any
// collection.
func (s *GameService) ListUserGames(userID uint64, filter repository.CollectionFilter) ([]models.UserGame, error) {
	entries, err := s.gameRepo.ListCollection(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}
	return entries, nil
}

// RemoveGame removes a game from the user's collection. Removing an absent
// entry still succeeds.
func (s *GameService) RemoveGame(userID, gameID uint64) error {
	if err := s.gameRepo.RemoveFromCollection(userID, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
