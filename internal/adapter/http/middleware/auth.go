package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workstream/pkg/apierrors"
	"workstream/pkg/auth"
)

const (
	userEmailKey = "uid"
	claimsKey    = "claims"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the authenticated email under "uid".
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.ParseToken(c.GetHeader("Authorization"))
		if err != nil {
			zap.L().Debug("rejected request token", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, GetLang(c)),
			)
			return
		}

		c.Set(userEmailKey, claims.Email)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}

func GetClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(claimsKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
