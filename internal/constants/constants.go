package constants

// ContextKeyUser is the gin context key holding the resolved current user.
const ContextKeyUser = "current_user"

// HeaderUserID is the client-supplied identity header. The value is trusted
// as-is; there is no token or signature verification.
const HeaderUserID = "X-User-Id"

// DefaultMaxPlayers is applied when a session is created without an explicit
// player limit.
const DefaultMaxPlayers = 4

// DefaultCompletionStatus is assigned whenever a game is added to a
// collection, including re-adds of games already present.
const DefaultCompletionStatus = "not_started"
