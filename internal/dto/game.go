package dto

import (
	"github.com/lfgconnect/lfg-api/internal/models"
)

// GameDTO represents a game in API responses
type GameDTO struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Platform    *string `json:"platform"`
	Genre       *string `json:"genre"`
	ReleaseYear *int    `json:"release_year"`
}

// CollectionItemDTO represents a game in a user's collection
type CollectionItemDTO struct {
	GameDTO
	CompletionStatus string `json:"completion_status"`
}

// ToGameDTO converts a Game model to GameDTO
func ToGameDTO(game models.Game) GameDTO {
	return GameDTO{
		ID:          game.ID,
		Title:       game.Title,
		Platform:    game.Platform,
		Genre:       game.Genre,
		ReleaseYear: game.ReleaseYear,
	}
}

// ToCollectionItemDTO converts a collection entry to CollectionItemDTO
func ToCollectionItemDTO(entry models.UserGame) CollectionItemDTO {
	return CollectionItemDTO{
		GameDTO:          ToGameDTO(entry.Game),
		CompletionStatus: entry.CompletionStatus,
	}
}

// ToCollectionItemDTOs converts a slice of collection entries
func ToCollectionItemDTOs(entries []models.UserGame) []CollectionItemDTO {
	items := make([]CollectionItemDTO, len(entries))
	for i, entry := range entries {
		items[i] = ToCollectionItemDTO(entry)
	}
	return items
}

// ToGameDTOs converts a slice of collection entries to bare games (the
// friend-collection view carries no completion status)
func ToGameDTOs(entries []models.UserGame) []GameDTO {
	games := make([]GameDTO, len(entries))
	for i, entry := range entries {
		games[i] = ToGameDTO(entry.Game)
	}
	return games
}
