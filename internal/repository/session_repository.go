package repository

import (
	"time"

	"github.com/lfgconnect/lfg-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSessionRepository is a GORM implementation of SessionRepository
type GormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &GormSessionRepository{db: db}
}

// CreateWithCreator inserts the session and the creator's "going" attendee
// row atomically, so a session is never observable without its creator.
func (r *GormSessionRepository) CreateWithCreator(session *models.GameSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}

		attendee := models.SessionAttendee{
			SessionID:  session.ID,
			UserID:     session.CreatorID,
			RsvpStatus: models.RsvpStatusGoing,
		}
		return tx.Create(&attendee).Error
	})
}

// FindByID finds a session by ID with optional preloading
func (r *GormSessionRepository) FindByID(id uint64, preload ...string) (*models.GameSession, error) {
	var session models.GameSession
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&session, id).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// ListByCreator lists sessions created by a user, newest first
func (r *GormSessionRepository) ListByCreator(creatorID uint64, status string, now time.Time) ([]models.GameSession, error) {
	query := r.db.
		Preload("Game").
		Preload("Creator").
		Where("creator_id = ?", creatorID)

	switch status {
	case "upcoming":
		query = query.Where("session_datetime > ?", now)
	case "past":
		query = query.Where("session_datetime <= ?", now)
	}

	var sessions []models.GameSession
	if err := query.Order("session_datetime DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListFeed lists upcoming sessions created by the user or by accepted friends
// from either friendship direction.
func (r *GormSessionRepository) ListFeed(userID uint64, from time.Time) ([]models.GameSession, error) {
	addedByUser := r.db.Model(&models.Friend{}).
		Select("user2_id").
		Where("user1_id = ? AND status = ?", userID, models.FriendStatusAccepted)
	addedUser := r.db.Model(&models.Friend{}).
		Select("user1_id").
		Where("user2_id = ? AND status = ?", userID, models.FriendStatusAccepted)

	var sessions []models.GameSession
	err := r.db.
		Preload("Game").
		Preload("Creator").
		Preload("Attendees.User").
		Where("session_datetime >= ?", from).
		Where("creator_id = ? OR creator_id IN (?) OR creator_id IN (?)", userID, addedByUser, addedUser).
		Order("session_datetime ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpsertRSVP inserts or updates the (session, user) attendee row
func (r *GormSessionRepository) UpsertRSVP(attendee *models.SessionAttendee) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rsvp_status"}),
	}).Create(attendee).Error
}

// MarkAttended sets attended for the listed users of a session
func (r *GormSessionRepository) MarkAttended(sessionID uint64, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.SessionAttendee{}).
		Where("session_id = ? AND user_id IN ?", sessionID, userIDs).
		Update("attended", true).Error
}

// ListRSVPs lists a session's attendees ordered by rsvp priority then username
func (r *GormSessionRepository) ListRSVPs(sessionID uint64) ([]models.SessionAttendee, error) {
	var attendees []models.SessionAttendee
	err := r.db.Model(&models.SessionAttendee{}).
		Select("session_attendees.*").
		Joins("JOIN users ON users.id = session_attendees.user_id").
		Where("session_attendees.session_id = ?", sessionID).
		Order("CASE session_attendees.rsvp_status WHEN 'going' THEN 1 WHEN 'pending' THEN 2 WHEN 'cant_go' THEN 3 ELSE 4 END").
		Order("users.username").
		Preload("User").
		Find(&attendees).Error
	if err != nil {
		return nil, err
	}
	return attendees, nil
}
