package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonhardc/storefront-api/session"
)

// SessionCookie is the name of the cookie carrying the session ID.
const SessionCookie = "session_id"

// Session resolves the request's session from the cookie, creating a fresh
// one when the cookie is missing or points at an expired row. The session ID
// ends up in the context under "session_id".
func Session(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
			if _, err := store.Get(id); err == nil {
				c.Set("session_id", id)
				c.Next()
				return
			}
		}

		sess, err := store.Create()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			c.Abort()
			return
		}

		c.SetCookie(SessionCookie, sess.ID, int(session.TTL.Seconds()), "/", "", false, true)
		c.Set("session_id", sess.ID)
		c.Next()
	}
}
