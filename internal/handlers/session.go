package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lfgconnect/lfg-api/internal/dto"
	apierrors "github.com/lfgconnect/lfg-api/internal/errors"
	"github.com/lfgconnect/lfg-api/internal/middleware"
	"github.com/lfgconnect/lfg-api/internal/services"
)

// SessionHandler coordinates game session HTTP handlers.
type SessionHandler struct {
	sessionService *services.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// CreateSession schedules a session and enrolls the caller as "going".
// The game id is not checked for existence.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateSessionRequest struct {
		GameID          uint64    `json:"gameId" binding:"required"`
		SessionDatetime time.Time `json:"session_datetime" binding:"required"`
		Location        *string   `json:"location"`
		MaxPlayers      *int      `json:"max_players"`
		Note            *string   `json:"note"`
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Game ID and datetime required")
		return
	}

	session, err := h.sessionService.CreateSession(services.CreateSessionInput{
		CreatorID:       user.ID,
		GameID:          req.GameID,
		SessionDatetime: req.SessionDatetime,
		Location:        req.Location,
		MaxPlayers:      req.MaxPlayers,
		Note:            req.Note,
	})
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Session created successfully",
		"sessionId":        session.ID,
		"gameId":           session.GameID,
		"session_datetime": session.SessionDatetime,
		"location":         session.Location,
	})
}

// GetUserSessions lists sessions created by a user, optionally narrowed to
// upcoming or past.
func (h *SessionHandler) GetUserSessions(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	sessions, err := h.sessionService.ListUserSessions(userID, c.Query("status"))
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionDTOs(sessions))
}

// GetSessionDetails returns a session with its attendee list.
func (h *SessionHandler) GetSessionDetails(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Session not found")
		return
	}

	session, err := h.sessionService.GetSessionDetails(sessionID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionDetailDTO(*session))
}

// RsvpSession upserts the caller's RSVP. Repeated identical calls are
// idempotent; the status value is stored as sent.
func (h *SessionHandler) RsvpSession(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Session not found")
		return
	}

	type RsvpRequest struct {
		RsvpStatus string `json:"rsvpStatus" binding:"required"`
	}

	var req RsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "RSVP status required")
		return
	}

	if err := h.sessionService.RSVP(sessionID, user.ID, req.RsvpStatus); err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "RSVP updated successfully",
		"rsvpStatus": req.RsvpStatus,
	})
}

// MarkAttendance flips attended for the listed users. Creator only; ids
// without an attendee row are ignored.
func (h *SessionHandler) MarkAttendance(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Session not found")
		return
	}

	type MarkAttendanceRequest struct {
		AttendedUserIDs []uint64 `json:"attendedUserIds"`
	}

	// A missing or empty body means nothing to mark, which still succeeds.
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.AttendedUserIDs = nil
	}

	if err := h.sessionService.MarkAttendance(sessionID, user.ID, req.AttendedUserIDs); err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attendance marked successfully",
	})
}

// GetSessionFeed lists upcoming sessions from the user and accepted friends.
func (h *SessionHandler) GetSessionFeed(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	sessions, err := h.sessionService.Feed(userID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedItemDTOs(sessions))
}

// GetSessionRsvps lists a session's attendees in rsvp priority order.
func (h *SessionHandler) GetSessionRsvps(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Session not found")
		return
	}

	attendees, err := h.sessionService.ListRSVPs(sessionID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendeeDTOs(attendees))
}

func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		apierrors.NotFound(c, "Session not found")
	case errors.Is(err, services.ErrNotSessionCreator):
		apierrors.Forbidden(c, "Only session creator can mark attendance")
	default:
		apierrors.InternalError(c, err.Error())
	}
}
