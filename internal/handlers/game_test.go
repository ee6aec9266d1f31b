package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lfgconnect/lfg-api/internal/database"
	"github.com/lfgconnect/lfg-api/internal/middleware"
	"github.com/lfgconnect/lfg-api/internal/models"
	"github.com/lfgconnect/lfg-api/internal/repository"
	"github.com/lfgconnect/lfg-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// GameHandlerTestSuite defines the test suite for GameHandler
type GameHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *GameHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.UserGame{},
		&models.Friend{},
		&models.GameSession{},
		&models.SessionAttendee{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	userRepo := repository.NewUserRepository(suite.db)
	gameRepo := repository.NewGameRepository(suite.db)
	handler := NewGameHandler(services.NewGameService(gameRepo))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.Identity(userRepo))
	suite.router.POST("/games/add", middleware.RequireAuth(), handler.AddGame)
	suite.router.GET("/games/user/:id", handler.GetUserGames)
	suite.router.DELETE("/games/:id", middleware.RequireAuth(), handler.DeleteGame)
}

// TearDownTest runs after each test
func (suite *GameHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *GameHandlerTestSuite) createTestUser(username, email string) *models.User {
	user := &models.User{
		Username: username,
		Email:    email,
		Password: "pw",
	}
	suite.db.Create(user)
	return user
}

func (suite *GameHandlerTestSuite) request(method, url string, payload any, userID uint64) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-Id", fmt.Sprintf("%d", userID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *GameHandlerTestSuite) TestAddGame() {
	user := suite.createTestUser("alice", "alice@example.com")

	w := suite.request(http.MethodPost, "/games/add", map[string]any{
		"title":        "Catan",
		"platform":     "tabletop",
		"genre":        "strategy",
		"release_year": 1995,
	}, user.ID)

	suite.Equal(http.StatusCreated, w.Code)

	var gameCount, entryCount int64
	suite.db.Model(&models.Game{}).Count(&gameCount)
	suite.db.Model(&models.UserGame{}).Count(&entryCount)
	suite.EqualValues(1, gameCount)
	suite.EqualValues(1, entryCount)
}

func (suite *GameHandlerTestSuite) TestAddGame_RequiresAuth() {
	w := suite.request(http.MethodPost, "/games/add", map[string]any{
		"title": "Catan",
	}, 0)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *GameHandlerTestSuite) TestAddGame_MissingTitle() {
	user := suite.createTestUser("alice", "alice@example.com")

	w := suite.request(http.MethodPost, "/games/add", map[string]any{
		"platform": "PC",
	}, user.ID)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// Adding the same (title, platform) twice must reuse the game row, and the
// second add resets the collection status to not_started.
func (suite *GameHandlerTestSuite) TestAddGame_TwiceReusesGame() {
	user := suite.createTestUser("alice", "alice@example.com")

	payload := map[string]any{"title": "Catan", "platform": "tabletop"}

	w := suite.request(http.MethodPost, "/games/add", payload, user.ID)
	suite.Equal(http.StatusCreated, w.Code)

	// Simulate progress before the re-add
	suite.db.Model(&models.UserGame{}).
		Where("user_id = ?", user.ID).
		Update("completion_status", "completed")

	w = suite.request(http.MethodPost, "/games/add", payload, user.ID)
	suite.Equal(http.StatusCreated, w.Code)

	var gameCount, entryCount int64
	suite.db.Model(&models.Game{}).Count(&gameCount)
	suite.db.Model(&models.UserGame{}).Count(&entryCount)
	suite.EqualValues(1, gameCount)
	suite.EqualValues(1, entryCount)

	var entry models.UserGame
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&entry).Error)
	suite.Equal("not_started", entry.CompletionStatus)
}

func (suite *GameHandlerTestSuite) TestGetUserGames_Filters() {
	user := suite.createTestUser("alice", "alice@example.com")

	for _, g := range []map[string]any{
		{"title": "Catan", "platform": "tabletop", "genre": "strategy"},
		{"title": "Celeste", "platform": "PC", "genre": "platformer"},
		{"title": "Civilization VI", "platform": "PC", "genre": "strategy"},
	} {
		w := suite.request(http.MethodPost, "/games/add", g, user.ID)
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	url := fmt.Sprintf("/games/user/%d", user.ID)

	w := suite.request(http.MethodGet, url, nil, 0)
	suite.Equal(http.StatusOK, w.Code)
	var all []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &all))
	suite.Len(all, 3)

	w = suite.request(http.MethodGet, url+"?platform=PC", nil, 0)
	var byPlatform []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &byPlatform))
	suite.Len(byPlatform, 2)

	w = suite.request(http.MethodGet, url+"?platform=PC&genre=strategy", nil, 0)
	var byGenre []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &byGenre))
	suite.Require().Len(byGenre, 1)
	suite.Equal("Civilization VI", byGenre[0]["title"])

	w = suite.request(http.MethodGet, url+"?search=Cel", nil, 0)
	var bySearch []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &bySearch))
	suite.Require().Len(bySearch, 1)
	suite.Equal("Celeste", bySearch[0]["title"])
}

func (suite *GameHandlerTestSuite) TestDeleteGame() {
	user := suite.createTestUser("alice", "alice@example.com")

	w := suite.request(http.MethodPost, "/games/add", map[string]any{
		"title": "Catan", "platform": "tabletop",
	}, user.ID)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var entry models.UserGame
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&entry).Error)

	w = suite.request(http.MethodDelete, fmt.Sprintf("/games/%d", entry.GameID), nil, user.ID)
	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.UserGame{}).Count(&count)
	suite.EqualValues(0, count)

	// Deleting an absent pair still reports success
	w = suite.request(http.MethodDelete, fmt.Sprintf("/games/%d", entry.GameID), nil, user.ID)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *GameHandlerTestSuite) TestDeleteGame_RequiresAuth() {
	w := suite.request(http.MethodDelete, "/games/1", nil, 0)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestGameHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}
