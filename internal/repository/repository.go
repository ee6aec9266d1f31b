package repository

import (
	"time"

	"github.com/lfgconnect/lfg-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// ExistsByEmailOrUsername reports whether any user already holds the
	// email or the username
	ExistsByEmailOrUsername(email, username string) (bool, error)
}

// CollectionFilter holds the optional filters for listing a game collection
type CollectionFilter struct {
	Platform *string
	Genre    *string
	Search   *string
}

// GameRepository defines the interface for game collection data access
type GameRepository interface {
	// AddToCollection resolves the game by (title, platform), creating it if
	// absent, and upserts the owner's collection row. Runs in one
	// transaction. Returns the resolved game ID.
	AddToCollection(userID uint64, game *models.Game) (uint64, error)

	// ListCollection lists a user's collection entries with their games
	ListCollection(userID uint64, filter CollectionFilter) ([]models.UserGame, error)

	// RemoveFromCollection deletes the (user, game) collection row. Deleting
	// an absent row is not an error.
	RemoveFromCollection(userID, gameID uint64) error
}

// FriendRepository defines the interface for friendship data access
type FriendRepository interface {
	// Add inserts the one-directional friendship row. Duplicate pairs are
	// ignored (insert-or-ignore on the pair index).
	Add(friend *models.Friend) error

	// ListAccepted lists accepted friendships visible from either column,
	// with both user rows loaded
	ListAccepted(userID uint64) ([]models.Friend, error)
}

// SessionRepository defines the interface for game session data access
type SessionRepository interface {
	// CreateWithCreator inserts the session and enrolls the creator as a
	// "going" attendee within a single transaction
	CreateWithCreator(session *models.GameSession) error

	// FindByID finds a session by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.GameSession, error)

	// ListByCreator lists sessions created by a user, newest first.
	// status narrows to "upcoming" (after now) or "past" (at or before now).
	ListByCreator(creatorID uint64, status string, now time.Time) ([]models.GameSession, error)

	// ListFeed lists sessions created by the user or by accepted friends
	// (either friendship direction), starting at from, ascending, with
	// games, creators and attendees loaded
	ListFeed(userID uint64, from time.Time) ([]models.GameSession, error)

	// UpsertRSVP inserts or updates the (session, user) attendee row to the
	// given rsvp status
	UpsertRSVP(attendee *models.SessionAttendee) error

	// MarkAttended sets attended for the listed users of a session. IDs
	// without an attendee row are no-ops.
	MarkAttended(sessionID uint64, userIDs []uint64) error

	// ListRSVPs lists a session's attendees ordered by rsvp priority
	// (going, pending, cant_go, other) then username
	ListRSVPs(sessionID uint64) ([]models.SessionAttendee, error)
}
