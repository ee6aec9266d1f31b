package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lfgconnect/lfg-api/internal/dto"
	apierrors "github.com/lfgconnect/lfg-api/internal/errors"
	"github.com/lfgconnect/lfg-api/internal/middleware"
	"github.com/lfgconnect/lfg-api/internal/repository"
	"github.com/lfgconnect/lfg-api/internal/services"
)

// GameHandler coordinates game collection HTTP handlers.
type GameHandler struct {
	gameService *services.GameService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// AddGame adds a game to the caller's collection.
func (h *GameHandler) AddGame(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type AddGameRequest struct {
		Title       string  `json:"title" binding:"required"`
		Platform    *string `json:"platform"`
		Genre       *string `json:"genre"`
		ReleaseYear *int    `json:"release_year"`
	}

	var req AddGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Game title required")
		return
	}

	gameID, err := h.gameService.AddGame(services.AddGameInput{
		UserID:      user.ID,
		Title:       req.Title,
		Platform:    req.Platform,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
	})
	if err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Game added to collection",
		"gameId":   gameID,
		"title":    req.Title,
		"platform": req.Platform,
	})
}

// GetUserGames lists any user's collection with optional filters.
func (h *GameHandler) GetUserGames(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	var filter repository.CollectionFilter
	if platform, ok := c.GetQuery("platform"); ok {
		filter.Platform = &platform
	}
	if genre, ok := c.GetQuery("genre"); ok {
		filter.Genre = &genre
	}
	if search, ok := c.GetQuery("search"); ok {
		filter.Search = &search
	}

	entries, err := h.gameService.ListUserGames(userID, filter)
	if err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToCollectionItemDTOs(entries))
}

// DeleteGame removes a game from the caller's collection. Removing an entry
// that is not there still reports success.
func (h *GameHandler) DeleteGame(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid game ID")
		return
	}

	if err := h.gameService.RemoveGame(user.ID, gameID); err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Game removed from collection",
	})
}
