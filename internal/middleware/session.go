package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/festy23/veterans_league/internal/auth/model"
	"github.com/festy23/veterans_league/internal/response"
	"github.com/festy23/veterans_league/internal/session"
)

// SessionResolver turns a presented token into a session.
type SessionResolver interface {
	Resolve(ctx context.Context, tokenString string) (session.Session, error)
}

// Session resolves the caller once per request from the Authorization bearer
// token or the session cookie. Invalid tokens leave the request anonymous.
func Session(resolver SessionResolver, cookieName string, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			raw, _ = c.Cookie(cookieName)
		}
		if raw == "" {
			session.Set(c, session.Session{})
			c.Next()
			return
		}

		sess, err := resolver.Resolve(c.Request.Context(), raw)
		if err != nil {
			if !errors.Is(err, authModel.ErrUnauthenticated) {
				logger.Errorw("session resolution failed", "error", err)
			}
			sess = session.Session{}
		}

		session.Set(c, sess)
		c.Next()
	}
}

// RequireAdmin rejects anonymous callers with 401 and non-admins with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)
		if sess.Anonymous() {
			response.AbortWithError(c, response.CodeUnauthorized, "sign in required", http.StatusUnauthorized)
			return
		}
		if !sess.IsAdmin {
			response.AbortWithError(c, response.CodeForbidden, "admin access required", http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
