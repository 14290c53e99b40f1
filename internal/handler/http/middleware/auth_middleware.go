package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/henok-tadesse/socialnet/internal/handler/http/dto"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

// AuthMiddleWare resolves the principal behind the bearer token and injects
// the explicit user ID into the request context. Handlers never read ambient
// session state.
func AuthMiddleWare(userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: "Not authenticated"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := userUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: "Invalid or expired token"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", string(user.Role))
		c.Next()
	}
}
