package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/lfgconnect/lfg-api/internal/constants"
	"github.com/lfgconnect/lfg-api/internal/models"
	"github.com/lfgconnect/lfg-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrNotSessionCreator = errors.New("only session creator can mark attendance")
)

// SessionService handles game session business logic.
type SessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionRepo repository.SessionRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
	}
}

// CreateSessionInput represents input for creating a session.
type CreateSessionInput struct {
	CreatorID       uint64
	GameID          uint64
	SessionDatetime time.Time
	Location        *string
	MaxPlayers      *int
	Note            *string
}

// CreateSession inserts the session and enrolls the creator as a "going"
// attendee. The game id is not checked for existence.
func (s *SessionService) CreateSession(input CreateSessionInput) (*models.GameSession, error) {
	maxPlayers := constants.DefaultMaxPlayers
	if input.MaxPlayers != nil {
		maxPlayers = *input.MaxPlayers
	}

	session := &models.GameSession{
		CreatorID:       input.CreatorID,
		GameID:          input.GameID,
		SessionDatetime: input.SessionDatetime,
		Location:        input.Location,
		MaxPlayers:      maxPlayers,
		Note:            input.Note,
	}

	if err := s.sessionRepo.CreateWithCreator(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// ListUserSessions lists sessions created by a user, newest first. status
// narrows to "upcoming" or "past" relative to the server clock.
func (s *SessionService) ListUserSessions(userID uint64, status string) ([]models.GameSession, error) {
	sessions, err := s.sessionRepo.ListByCreator(userID, status, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	return sessions, nil
}

// GetSessionDetails returns a session with its game, creator and attendees.
func (s *SessionService) GetSessionDetails(sessionID uint64) (*models.GameSession, error) {
	session, err := s.sessionRepo.FindByID(sessionID, "Game", "Creator", "Attendees.User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch session details: %w", err)
	}
	return session, nil
}

// RSVP upserts the caller's attendee row to the given status. The status
// value is not validated; repeated identical calls are idempotent.
func (s *SessionService) RSVP(sessionID, userID uint64, rsvpStatus string) error {
	attendee := &models.SessionAttendee{
		SessionID:  sessionID,
		UserID:     userID,
		RsvpStatus: rsvpStatus,
	}
	if err := s.sessionRepo.UpsertRSVP(attendee); err != nil {
		return fmt.Errorf("failed to update RSVP: %w", err)
	}
	return nil
}

// MarkAttendance flips attended to true for the listed users. Only the
// session creator may do this; ids without an attendee row are no-ops.
func (s *SessionService) MarkAttendance(sessionID, actorID uint64, attendedUserIDs []uint64) error {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to find session: %w", err)
	}

	if session.CreatorID != actorID {
		return ErrNotSessionCreator
	}

	if err := s.sessionRepo.MarkAttended(sessionID, attendedUserIDs); err != nil {
		return fmt.Errorf("failed to mark attendance: %w", err)
	}
	return nil
}

// Feed lists upcoming sessions created by the user or their accepted friends,
// from the start of today, ascending.
func (s *SessionService) Feed(userID uint64) ([]models.GameSession, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sessions, err := s.sessionRepo.ListFeed(userID, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session feed: %w", err)
	}
	return sessions, nil
}

// ListRSVPs lists a session's attendees in rsvp priority order.
func (s *SessionService) ListRSVPs(sessionID uint64) ([]models.SessionAttendee, error) {
	attendees, err := s.sessionRepo.ListRSVPs(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session RSVPs: %w", err)
	}
	return attendees, nil
}
