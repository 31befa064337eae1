package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Lexv0lk/checkout-store/internal/gateway/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/jwt"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"

	UserIDKey = "userId"
)

// NewAuthMiddleware rejects requests without a valid bearer token before their body is read.
// The token is kept in the request context for forwarding to downstream services.
func NewAuthMiddleware(service domain.AuthService, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			abortWithError(c, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortWithError(c, http.StatusUnauthorized, "invalid auth header")
			return
		}

		userID, err := service.Verify(c.Request.Context(), parts[1])
		if err != nil {
			handleGRPCError(c, logger, err)
			return
		}

		c.Set(UserIDKey, userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), jwt.TokenContextKey, parts[1]))
		c.Next()
	}
}
