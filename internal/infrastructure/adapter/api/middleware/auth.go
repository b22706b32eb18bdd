package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/dto"
)

// Context keys for the authenticated identity
const (
	ContextUserIDKey   = "auth.userID"
	ContextUsernameKey = "auth.username"
)

// RequireAuth verifies the Authorization bearer token and stores the
// authenticated identity in the gin context
func RequireAuth(tokens coreport.TokenProvider, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithAuthError(c, errs.ErrMissingToken)
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortWithAuthError(c, errs.ErrMalformedToken)
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			if !errors.Is(err, errs.ErrTokenExpired) {
				err = errs.ErrInvalidToken
			}
			logger.Debug("Rejected bearer token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			abortWithAuthError(c, err)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the gin context.
// It is only valid behind RequireAuth.
func CurrentUserID(c *gin.Context) uint64 {
	id, _ := c.Get(ContextUserIDKey)
	userID, _ := id.(uint64)
	return userID
}

func abortWithAuthError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errs.HTTPStatus(err), dto.ErrorResponse{
		Success: false,
		Code:    errs.ErrorCode(err),
		Message: err.Error(),
	})
}
