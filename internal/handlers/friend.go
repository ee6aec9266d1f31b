package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lfgconnect/lfg-api/internal/dto"
	apierrors "github.com/lfgconnect/lfg-api/internal/errors"
	"github.com/lfgconnect/lfg-api/internal/middleware"
	"github.com/lfgconnect/lfg-api/internal/services"
)

// FriendHandler coordinates friendship HTTP handlers.
type FriendHandler struct {
	friendService *services.FriendService
}

// NewFriendHandler creates a new FriendHandler.
func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// AddFriend records a friendship from the caller to the user with the given
// email. Re-adding an existing friend is a no-op that still succeeds.
func (h *FriendHandler) AddFriend(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type AddFriendRequest struct {
		FriendEmail string `json:"friendEmail" binding:"required"`
	}

	var req AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Friend email required")
		return
	}

	friend, err := h.friendService.AddFriend(user.ID, req.FriendEmail)
	if err != nil {
		respondFriendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Friend added successfully",
		"friendId":    friend.ID,
		"friendEmail": req.FriendEmail,
	})
}

// GetFriends lists a user's accepted friends.
func (h *FriendHandler) GetFriends(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	friends, err := h.friendService.ListFriends(userID)
	if err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToFriendDTOs(friends, userID))
}

// GetFriendGames lists a friend's collection. No friendship check is made.
func (h *FriendHandler) GetFriendGames(c *gin.Context) {
	friendID, err := strconv.ParseUint(c.Param("friendId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid friend ID")
		return
	}

	entries, err := h.friendService.ListFriendGames(friendID)
	if err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToGameDTOs(entries))
}

func respondFriendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFriendNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrSelfFriend):
		apierrors.BadRequest(c, "Cannot add yourself as friend")
	default:
		apierrors.InternalError(c, err.Error())
	}
}
