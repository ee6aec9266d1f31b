package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lfgconnect/lfg-api/internal/database"
	"github.com/lfgconnect/lfg-api/internal/middleware"
	"github.com/lfgconnect/lfg-api/internal/models"
	"github.com/lfgconnect/lfg-api/internal/repository"
	"github.com/lfgconnect/lfg-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type friendTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupFriendTestEnv(t *testing.T) friendTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.UserGame{},
		&models.Friend{},
		&models.GameSession{},
		&models.SessionAttendee{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	handler := NewFriendHandler(services.NewFriendService(friendRepo, userRepo, gameRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity(userRepo))
	r.POST("/friends/add", middleware.RequireAuth(), handler.AddFriend)
	r.GET("/friends/:userId", handler.GetFriends)
	r.GET("/friends/:userId/games/:friendId", handler.GetFriendGames)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return friendTestEnv{db: db, router: r}
}

func createUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "pw"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func authHeader(userID uint64) map[string]string {
	return map[string]string{"X-User-Id": fmt.Sprintf("%d", userID)}
}

func TestFriendHandler_AddFriend(t *testing.T) {
	env := setupFriendTestEnv(t)

	alice := createUser(t, env.db, "alice", "alice@example.com")
	bob := createUser(t, env.db, "bob", "bob@example.com")

	w := performJSON(t, env.router, http.MethodPost, "/friends/add", map[string]string{
		"friendEmail": bob.Email,
	}, authHeader(alice.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	var row models.Friend
	require.NoError(t, env.db.First(&row).Error)
	require.Equal(t, alice.ID, row.User1ID)
	require.Equal(t, bob.ID, row.User2ID)
	require.Equal(t, models.FriendStatusAccepted, row.Status)
}

// A duplicate add is ignored at the store and still reports success.
func TestFriendHandler_AddFriend_DuplicateIsNoop(t *testing.T) {
	env := setupFriendTestEnv(t)

	alice := createUser(t, env.db, "alice", "alice@example.com")
	bob := createUser(t, env.db, "bob", "bob@example.com")

	for i := 0; i < 2; i++ {
		w := performJSON(t, env.router, http.MethodPost, "/friends/add", map[string]string{
			"friendEmail": bob.Email,
		}, authHeader(alice.ID))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var count int64
	require.NoError(t, env.db.Model(&models.Friend{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestFriendHandler_AddFriend_Errors(t *testing.T) {
	env := setupFriendTestEnv(t)

	alice := createUser(t, env.db, "alice", "alice@example.com")

	w := performJSON(t, env.router, http.MethodPost, "/friends/add", map[string]string{
		"friendEmail": "nobody@example.com",
	}, authHeader(alice.ID))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(t, env.router, http.MethodPost, "/friends/add", map[string]string{
		"friendEmail": alice.Email,
	}, authHeader(alice.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, env.router, http.MethodPost, "/friends/add", map[string]string{
		"friendEmail": alice.Email,
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// Friendships are readable from either column and non-accepted rows are
// excluded.
func TestFriendHandler_GetFriends_Symmetric(t *testing.T) {
	env := setupFriendTestEnv(t)

	alice := createUser(t, env.db, "alice", "alice@example.com")
	bob := createUser(t, env.db, "bob", "bob@example.com")
	carol := createUser(t, env.db, "carol", "carol@example.com")

	require.NoError(t, env.db.Create(&models.Friend{
		User1ID: alice.ID, User2ID: bob.ID, Status: models.FriendStatusAccepted,
	}).Error)
	require.NoError(t, env.db.Create(&models.Friend{
		User1ID: carol.ID, User2ID: alice.ID, Status: models.FriendStatusPending,
	}).Error)

	// Visible from the adding side
	w := performJSON(t, env.router, http.MethodGet, fmt.Sprintf("/friends/%d", alice.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var friendsOfAlice []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &friendsOfAlice))
	require.Len(t, friendsOfAlice, 1)
	require.Equal(t, "bob", friendsOfAlice[0]["username"])

	// Visible from the added side without a reverse row
	w = performJSON(t, env.router, http.MethodGet, fmt.Sprintf("/friends/%d", bob.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var friendsOfBob []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &friendsOfBob))
	require.Len(t, friendsOfBob, 1)
	require.Equal(t, "alice", friendsOfBob[0]["username"])
}

func TestFriendHandler_GetFriendGames(t *testing.T) {
	env := setupFriendTestEnv(t)

	alice := createUser(t, env.db, "alice", "alice@example.com")
	bob := createUser(t, env.db, "bob", "bob@example.com")

	game := models.Game{Title: "Catan"}
	require.NoError(t, env.db.Create(&game).Error)
	require.NoError(t, env.db.Create(&models.UserGame{
		UserID: bob.ID, GameID: game.ID, CompletionStatus: "playing",
	}).Error)

	// No friendship check: any id pair works
	w := performJSON(t, env.router, http.MethodGet,
		fmt.Sprintf("/friends/%d/games/%d", alice.ID, bob.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var games []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	require.Len(t, games, 1)
	require.Equal(t, "Catan", games[0]["title"])
	require.NotContains(t, games[0], "completion_status")
}
