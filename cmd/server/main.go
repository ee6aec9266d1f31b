package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lfgconnect/lfg-api/internal/config"
	"github.com/lfgconnect/lfg-api/internal/database"
	"github.com/lfgconnect/lfg-api/internal/handlers"
	"github.com/lfgconnect/lfg-api/internal/logger"
	"github.com/lfgconnect/lfg-api/internal/middleware"
	"github.com/lfgconnect/lfg-api/internal/repository"
	"github.com/lfgconnect/lfg-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.Init()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo))
	gameHandler := handlers.NewGameHandler(services.NewGameService(gameRepo))
	friendHandler := handlers.NewFriendHandler(services.NewFriendService(friendRepo, userRepo, gameRepo))
	sessionHandler := handlers.NewSessionHandler(services.NewSessionService(sessionRepo))

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))

	// Fully open CORS; preflight requests are answered before any other logic
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:    []string{"Content-Type", "Authorization", "X-User-Id", "X-Requested-With", "Accept", "Origin"},
		ExposeHeaders:   []string{"Content-Length", "Content-Range"},
		MaxAge:          24 * time.Hour,
	}))

	// Resolve the X-User-Id identity once per request
	r.Use(middleware.Identity(userRepo))

	r.GET("/", handlers.APIRoot)
	r.NoRoute(handlers.RouteNotFound)

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/user/:id", authHandler.GetUser)
	}

	// Game collection routes
	games := r.Group("/games")
	{
		games.POST("/add", middleware.RequireAuth(), gameHandler.AddGame)
		games.GET("/user/:id", gameHandler.GetUserGames)
		games.DELETE("/:id", middleware.RequireAuth(), gameHandler.DeleteGame)
	}

	// Friend routes
	friends := r.Group("/friends")
	{
		friends.POST("/add", middleware.RequireAuth(), friendHandler.AddFriend)
		friends.GET("/:userId", friendHandler.GetFriends)
		friends.GET("/:userId/games/:friendId", friendHandler.GetFriendGames)
	}

	// Session routes
	sessions := r.Group("/sessions")
	{
		sessions.POST("/create", middleware.RequireAuth(), sessionHandler.CreateSession)
		sessions.GET("/user/:id", sessionHandler.GetUserSessions)
		sessions.GET("/feed/:userId", sessionHandler.GetSessionFeed)
		sessions.GET("/:id", sessionHandler.GetSessionDetails)
		sessions.GET("/:id/rsvps", sessionHandler.GetSessionRsvps)
		sessions.POST("/:id/rsvp", middleware.RequireAuth(), sessionHandler.RsvpSession)
		sessions.POST("/:id/attendance", middleware.RequireAuth(), sessionHandler.MarkAttendance)
	}

	// Start server
	log.Info("Server starting", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
