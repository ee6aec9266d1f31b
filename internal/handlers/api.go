package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var routeDescriptions = gin.H{
	"POST /auth/register":                    "Register user",
	"POST /auth/login":                       "Login user",
	"GET /auth/user/{id}":                    "Get user info",
	"POST /games/add":                        "Add game (requires X-User-Id)",
	"GET /games/user/{id}":                   "Get user games",
	"DELETE /games/{id}":                     "Delete game (requires X-User-Id)",
	"POST /friends/add":                      "Add friend (requires X-User-Id)",
	"GET /friends/{userId}":                  "Get friends",
	"GET /friends/{userId}/games/{friendId}": "Get friend games",
	"POST /sessions/create":                  "Create session (requires X-User-Id)",
	"GET /sessions/user/{id}":                "Get user sessions",
	"GET /sessions/feed/{userId}":            "Get session feed from friends",
	"GET /sessions/{id}":                     "Get session details",
	"GET /sessions/{id}/rsvps":               "Get session RSVPs",
	"POST /sessions/{id}/rsvp":               "RSVP to session (requires X-User-Id)",
	"POST /sessions/{id}/attendance":         "Mark attendance (requires X-User-Id)",
}

// APIRoot serves the static API description.
func APIRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api_name":  "LFG Connect API",
		"version":   "1.0",
		"status":    "running",
		"endpoints": routeDescriptions,
	})
}

// RouteNotFound answers unmatched routes with a diagnostic echoing the
// request and its parsed segments.
func RouteNotFound(c *gin.Context) {
	route := strings.Trim(c.Request.URL.Path, "/")

	c.JSON(http.StatusNotFound, gin.H{
		"error":            "Endpoint not found",
		"route":            route,
		"method":           c.Request.Method,
		"parts":            strings.Split(route, "/"),
		"available_routes": routeDescriptions,
	})
}
