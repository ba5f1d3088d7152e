package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carebase/hospital-portal/internal/flash"
	"github.com/carebase/hospital-portal/internal/session"
)

// AuthMiddleware is the access guard: every record-listing or record-mutating
// route sits behind it.
type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireSession redirects to the login page with a warning notice when no
// valid session is present, and performs no other side effect. On success the
// identity is injected into the request context.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.sessions.Current(c)
		if err != nil {
			flash.Set(c, flash.KindWarning, "Please login first.")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		session.IntoContext(c, identity)
		c.Next()
	}
}
