package middleware

import (
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/services"
	"bodylover-backend/internal/utils"
	"bodylover-backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserKey is the gin context key holding the authenticated models.User.
const UserKey = "user"

// AuthMiddleware accepts a bearer JWT that is valid, not revoked, and names an
// existing user.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		isDenylisted, err := services.IsDenylisted(tokenString)
		if err != nil {
			logger.Log.Error("Failed to check token denylist", zap.Error(err))
			utils.Fail(c, http.StatusBadRequest, "Failed to check token status")
			c.Abort()
			return
		}
		if isDenylisted {
			utils.Fail(c, http.StatusUnauthorized, "Token has been revoked")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Invalid user ID in token")
			c.Abort()
			return
		}

		user, err := services.FindUserByID(uint(userIDFloat))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				utils.Fail(c, http.StatusUnauthorized, "User not found")
			} else {
				logger.Log.Error("Failed to load token user", zap.Error(err))
				utils.Fail(c, http.StatusBadRequest, "Failed to load user")
			}
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
