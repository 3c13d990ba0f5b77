package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with. Code mirrors the
// HTTP status: 200 on success, 400 for any failed operation, 401 and 403 for
// rejected credentials.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a new success Response instance.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a new error Response instance without data.
func NewErrorResponse(code int, message string) Response {
	return Response{
		Code:    code,
		Message: message,
	}
}

// Fail writes an error envelope with the matching HTTP status.
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, NewErrorResponse(code, message))
}

// OK writes a success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, NewSuccessResponse(message, data))
}
