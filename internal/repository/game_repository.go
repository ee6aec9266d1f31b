package repository

import (
	"errors"

	"github.com/lfgconnect/lfg-api/internal/constants"
	"github.com/lfgconnect/lfg-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormGameRepository is a GORM implementation of GameRepository
type GormGameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *gorm.DB) GameRepository {
	return &GormGameRepository{db: db}
}

// AddToCollection resolves or creates the game and upserts the collection row
// atomically. The collection status is reset to not_started on every add,
// including re-adds.
func (r *GormGameRepository) AddToCollection(userID uint64, game *models.Game) (uint64, error) {
	var gameID uint64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Game
		query := tx.Where("title = ?", game.Title)
		if game.Platform != nil {
			query = query.Where("platform = ?", *game.Platform)
		} else {
			query = query.Where("platform IS NULL")
		}

		err := query.First(&existing).Error
		switch {
		case err == nil:
			gameID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(game).Error; err != nil {
				return err
			}
			gameID = game.ID
		default:
			return err
		}

		entry := models.UserGame{
			UserID:           userID,
			GameID:           gameID,
			CompletionStatus: constants.DefaultCompletionStatus,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completion_status"}),
		}).Create(&entry).Error
	})

	return gameID, err
}

// ListCollection lists a user's collection entries with their games
func (r *GormGameRepository) ListCollection(userID uint64, filter CollectionFilter) ([]models.UserGame, error) {
	query := r.db.Model(&models.UserGame{}).
		Select("user_games.*").
		Joins("JOIN games ON games.id = user_games.game_id").
		Where("user_games.user_id = ?", userID).
		Preload("Game")

	if filter.Platform != nil {
		query = query.Where("games.platform = ?", *filter.Platform)
	}
	if filter.Genre != nil {
		query = query.Where("games.genre = ?", *filter.Genre)
	}
	if filter.Search != nil {
		query = query.Where("games.title LIKE ?", "%"+*filter.Search+"%")
	}

	var entries []models.UserGame
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// RemoveFromCollection deletes the (user, game) collection row
func (r *GormGameRepository) RemoveFromCollection(userID, gameID uint64) error {
	return r.db.
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.UserGame{}).Error
}
