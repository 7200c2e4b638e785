package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/learnhub/course-enroll/internal/constant"
	"github.com/learnhub/course-enroll/internal/model"
	"github.com/learnhub/course-enroll/internal/model/response"
	"github.com/learnhub/course-enroll/internal/token"
)

const bearerPrefix = "Bearer "

// RequireAuth is the single authorization gate for every private route.
// A missing or malformed Authorization header and a failed verification get
// distinct 401 messages; on success the decoded payload lands in the gin
// context under constant.JWTPayloadKey. Authenticated means authorized here:
// there are no per-route role checks.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			zap.L().Warn("Missing or malformed Authorization header",
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Message{
				Message: "No token, authorization denied",
			})
			return
		}

		payload, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			zap.L().Warn("Token verification failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Message{
				Message: "Invalid token",
			})
			return
		}

		c.Set(constant.JWTPayloadKey, *payload)
		c.Next()
	}
}

// CallerIdentity reads the decoded identity stored by RequireAuth. The second
// return is false on routes that skipped the gate.
func CallerIdentity(c *gin.Context) (model.Identity, bool) {
	v, ok := c.Get(constant.JWTPayloadKey)
	if !ok {
		return model.Identity{}, false
	}
	payload, ok := v.(model.JWTPayload)
	if !ok {
		return model.Identity{}, false
	}
	return payload.User, true
}
