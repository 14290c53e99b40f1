package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/henok-tadesse/socialnet/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Success: false, Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Success: true, Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// PrincipalID extracts the authenticated user ID injected by the auth
// middleware. The second return is false when the request is anonymous.
func PrincipalID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
