package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"planner/cache"
	"planner/logging"
	"planner/model"
	"planner/services"
)

const (
	// CookieName carries the session token for browser clients.
	CookieName = "session_token"
	// RefreshHeader returns a reissued token when the session slides.
	RefreshHeader = "X-Session-Token"
)

// SessionAuth authenticates requests by session token and resolves the
// caller's user record through a short-lived cache.
type SessionAuth struct {
	sessions *services.SessionManager
	users    *services.UserService
	cache    *cache.TTL[string, *model.User]
}

func NewSessionAuth(sessions *services.SessionManager, users *services.UserService, userCache *cache.TTL[string, *model.User]) *SessionAuth {
	return &SessionAuth{sessions: sessions, users: users, cache: userCache}
}

func tokenFrom(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie
	}
	return ""
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// Required rejects requests without a valid session with 401. On success it
// stores "userId" and "user" on the context, and reissues the token when it
// is older than the session update age.
func (a *SessionAuth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFrom(c)
		if token == "" {
			unauthorized(c)
			return
		}
		claims, err := a.sessions.Parse(token)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := a.user(c, claims.UserID)
		if errors.Is(err, services.ErrNotFound) {
			unauthorized(c)
			return
		}
		if err != nil {
			logging.Event("session_user_lookup_failed", claims.UserID, map[string]interface{}{"error": err})
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if a.sessions.NeedsRefresh(claims) {
			fresh, _, err := a.sessions.Issue(user)
			if err != nil {
				logging.Event("session_refresh_failed", user.UserID, map[string]interface{}{"error": err})
			} else {
				c.Header(RefreshHeader, fresh)
				SetSessionCookie(c, fresh, a.sessions.MaxAge())
			}
		}

		c.Set("userId", user.UserID)
		c.Set("user", user)
		c.Next()
	}
}

func (a *SessionAuth) user(c *gin.Context, id string) (*model.User, error) {
	if u, ok := a.cache.Get(id); ok {
		return u, nil
	}
	u, err := a.users.Get(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	a.cache.Set(id, u)
	return u, nil
}

// Forget drops a cached user so the next request reloads it.
func (a *SessionAuth) Forget(userID string) {
	a.cache.Delete(userID)
}

func SetSessionCookie(c *gin.Context, token string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(maxAge.Seconds()), "/", "", c.Request.TLS != nil, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", c.Request.TLS != nil, true)
}

// CurrentUser returns the user stored by Required.
func CurrentUser(c *gin.Context) *model.User {
	return c.MustGet("user").(*model.User)
}
