package middleware

import (
	"net/http"
	"strings"

	"taskhub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and stores the acting user's
// identity and roles on the request context. Handlers downstream read them
// via ActorFromContext.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "missing_token",
				"message": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_token_format",
				"message": "Authorization header must use Bearer token",
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_token",
				"message": "Token validation failed",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_claims",
				"message": "Token claims are invalid",
			})
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok || userID < 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_claims",
				"message": "Token is missing the user identity",
			})
			return
		}

		var roles models.Roles
		if rawRoles, ok := claims["roles"].([]interface{}); ok {
			for _, raw := range rawRoles {
				if role, ok := raw.(string); ok {
					roles = append(roles, role)
				}
			}
		}

		c.Set("user_id", uint(userID))
		c.Set("user_roles", roles)

		c.Next()
	}
}

// ActorFromContext rebuilds the acting user from the validated claims. The
// identity and roles are enough for policy checks; profile data stays in
// the store.
func ActorFromContext(c *gin.Context) (*models.User, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil, false
	}
	id, ok := userID.(uint)
	if !ok {
		return nil, false
	}

	actor := &models.User{ID: id}
	if roles, ok := c.Get("user_roles"); ok {
		if typed, ok := roles.(models.Roles); ok {
			actor.Roles = typed
		}
	}

	return actor, true
}
