package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

const (
	userIDKey  = "userId"
	isGuestKey = "isGuest"

	// GuestHeader carries the browser-generated guest identity.
	GuestHeader = "X-Guest-Id"
)

// Auth resolves the guest identity from the X-Guest-Id header and stores it
// in context. Paths for which public returns true pass without identity.
// Preflights never reach it; CORS answers them first.
func Auth(public func(path string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := strings.TrimSpace(c.GetHeader(GuestHeader))
		if guestID == "" {
			if public != nil && public(c.Request.URL.Path) {
				c.Next()
				return
			}
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}

		c.Set(userIDKey, "guest:"+guestID)
		c.Set(isGuestKey, true)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
