package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/core/apperror"
	appctx "storeadmin/internal/core/context"
)

// SessionValidator turns a bearer token into a session.
type SessionValidator interface {
	ValidateToken(tokenString string) (*appctx.Session, error)
}

// Auth middleware validates bearer tokens and puts the session in the request context.
func Auth(validator SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		sess, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok {
				_ = c.Error(apperror.NewUnauthorized(appErr.Message))
			} else {
				_ = c.Error(apperror.NewUnauthorized("invalid token"))
			}
			c.Abort()
			return
		}

		ctx := appctx.WithSession(c.Request.Context(), sess)
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", sess.UserID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
