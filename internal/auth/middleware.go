package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// Cookie names shared with the login/logout/refresh endpoints.
const (
	AccessCookie  = "users_access_token"
	RefreshCookie = "refresh_token"
)

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// Identity is the minimal view of a resolved user the middleware stashes in
// the request context.
type Identity struct {
	ID       string
	Username string
}

// IdentityResolver maps a token subject to a durable identity. A token can
// outlive its user, so resolution failure is an authentication failure.
type IdentityResolver interface {
	Resolve(ctx context.Context, subjectID string) (Identity, error)
}

// ExtractToken pulls the credential for the given kind off the request:
// cookie first, then Authorization bearer header, then — for websocket
// handshakes where headers are awkward — a "token" query parameter.
func ExtractToken(c *gin.Context, kind TokenKind) string {
	cookie := AccessCookie
	if kind == KindRefresh {
		cookie = RefreshCookie
	}
	if v, err := c.Cookie(cookie); err == nil && v != "" {
		return v
	}
	authz := c.GetHeader("Authorization")
	if len(authz) > 7 && strings.EqualFold(authz[:7], "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return c.Query("token")
}

// Middleware authenticates API requests with an access token and aborts with
// a structured 401 on failure.
func Middleware(ts *TokenService, resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := authenticate(c, ts, resolver)
		if err != nil {
			c.AbortWithStatusJSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.Set(ctxUserID, ident.ID)
		c.Set(ctxUsername, ident.Username)
		c.Next()
	}
}

// PageMiddleware is the variant for HTML call sites: a missing or expired
// token redirects to the login page instead of answering with a JSON error.
func PageMiddleware(ts *TokenService, resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := authenticate(c, ts, resolver)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ctxUserID, ident.ID)
		c.Set(ctxUsername, ident.Username)
		c.Next()
	}
}

func authenticate(c *gin.Context, ts *TokenService, resolver IdentityResolver) (Identity, error) {
	tokenStr := ExtractToken(c, KindAccess)
	if tokenStr == "" {
		return Identity{}, ErrTokenMissing
	}
	subject, err := ts.Validate(tokenStr, KindAccess)
	if err != nil {
		return Identity{}, err
	}
	ident, err := resolver.Resolve(c.Request.Context(), subject)
	if err != nil {
		return Identity{}, err
	}
	return ident, nil
}

// GetUserID returns the authenticated user's id or "" when the middleware did
// not run.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok2 := v.(string); ok2 {
			return id
		}
	}
	return ""
}

// GetUsername returns the authenticated user's login name.
func GetUsername(c *gin.Context) string {
	if v, ok := c.Get(ctxUsername); ok {
		if name, ok2 := v.(string); ok2 {
			return name
		}
	}
	return ""
}
