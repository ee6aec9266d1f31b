package dto

import (
	"time"

	"github.com/lfgconnect/lfg-api/internal/models"
)

// SessionDTO represents a session in API responses, with the game title and
// creator name joined in.
type SessionDTO struct {
	ID              uint64    `json:"id"`
	GameID          uint64    `json:"game_id"`
	GameTitle       string    `json:"game_title"`
	CreatorID       uint64    `json:"creator_id"`
	CreatorName     string    `json:"creator_name"`
	SessionDatetime time.Time `json:"session_datetime"`
	Location        *string   `json:"location"`
	MaxPlayers      int       `json:"max_players"`
	Note            *string   `json:"note"`
	CreatedAt       time.Time `json:"created_at"`
}

// AttendeeDTO represents a session attendee in API responses
type AttendeeDTO struct {
	UserID     uint64 `json:"user_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	RsvpStatus string `json:"rsvp_status"`
	Attended   bool   `json:"attended"`
}

// SessionDetailDTO is a session with its attendee list
type SessionDetailDTO struct {
	SessionDTO
	Attendees []AttendeeDTO `json:"attendees"`
}

// FeedItemDTO is a session in the feed, with attendees and the count of
// attendees whose rsvp status is "going"
type FeedItemDTO struct {
	SessionDTO
	Attendees  []AttendeeDTO `json:"attendees"`
	GoingCount int           `json:"going_count"`
}

// ToSessionDTO converts a GameSession model to SessionDTO
func ToSessionDTO(session models.GameSession) SessionDTO {
	return SessionDTO{
		ID:              session.ID,
		GameID:          session.GameID,
		GameTitle:       session.Game.Title,
		CreatorID:       session.CreatorID,
		CreatorName:     session.Creator.Username,
		SessionDatetime: session.SessionDatetime,
		Location:        session.Location,
		MaxPlayers:      session.MaxPlayers,
		Note:            session.Note,
		CreatedAt:       session.CreatedAt,
	}
}

// ToSessionDTOs converts a slice of sessions
func ToSessionDTOs(sessions []models.GameSession) []SessionDTO {
	items := make([]SessionDTO, len(sessions))
	for i, session := range sessions {
		items[i] = ToSessionDTO(session)
	}
	return items
}

// ToAttendeeDTO converts a SessionAttendee model to AttendeeDTO
func ToAttendeeDTO(attendee models.SessionAttendee) AttendeeDTO {
	return AttendeeDTO{
		UserID:     attendee.UserID,
		Username:   attendee.User.Username,
		Email:      attendee.User.Email,
		RsvpStatus: attendee.RsvpStatus,
		Attended:   attendee.Attended,
	}
}

// ToAttendeeDTOs converts a slice of attendees
func ToAttendeeDTOs(attendees []models.SessionAttendee) []AttendeeDTO {
	items := make([]AttendeeDTO, len(attendees))
	for i, attendee := range attendees {
		items[i] = ToAttendeeDTO(attendee)
	}
	return items
}

// ToSessionDetailDTO converts a session with preloaded attendees
func ToSessionDetailDTO(session models.GameSession) SessionDetailDTO {
	return SessionDetailDTO{
		SessionDTO: ToSessionDTO(session),
		Attendees:  ToAttendeeDTOs(session.Attendees),
	}
}

// ToFeedItemDTO converts a session to a feed item, counting "going" RSVPs
func ToFeedItemDTO(session models.GameSession) FeedItemDTO {
	goingCount := 0
	for _, attendee := range session.Attendees {
		if attendee.RsvpStatus == models.RsvpStatusGoing {
			goingCount++
		}
	}

	return FeedItemDTO{
		SessionDTO: ToSessionDTO(session),
		Attendees:  ToAttendeeDTOs(session.Attendees),
		GoingCount: goingCount,
	}
}

// ToFeedItemDTOs converts a slice of feed sessions
func ToFeedItemDTOs(sessions []models.GameSession) []FeedItemDTO {
	items := make([]FeedItemDTO, len(sessions))
	for i, session := range sessions {
		items[i] = ToFeedItemDTO(session)
	}
	return items
}
