package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"disease-predictor-gateway/internal/models"
	"disease-predictor-gateway/internal/session"
)

const sessionContextKey = "session"

// RequireSession gates protected views behind the locally persisted
// session. The store is re-read on every request - the decision is never
// cached - so a session cleared elsewhere is caught on the next navigation.
// Without a valid session the user is redirected to the login entry point
// and the protected handler never runs.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := store.Load()
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(sessionContextKey, current)
		c.Next()
	}
}

// SessionFromContext returns the session placed by RequireSession.
func SessionFromContext(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	current, ok := value.(*models.Session)
	return current, ok
}
