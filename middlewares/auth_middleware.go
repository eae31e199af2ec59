package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/utils"
)

// AuthMiddleware memeriksa header Authorization: Bearer <token>.
// Tanpa token => 401, token rusak/kadaluarsa => 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("No token provided"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusForbidden, errors.New("Invalid or expired token"))
			c.Abort()
			return
		}

		if claims.ID == 0 {
			utils.RespondError(c, http.StatusForbidden, errors.New("Invalid customer ID in token"))
			c.Abort()
			return
		}

		c.Set("customer_id", claims.ID)
		c.Set("firstname", claims.Firstname)
		c.Set("lastname", claims.Lastname)

		c.Next()
	}
}
