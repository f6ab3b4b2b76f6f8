package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jalseva-http-service/internal/error/code"
)

// Response is the unified JSON envelope returned by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a 200 success envelope
func Success(c *gin.Context, message string, data interface{}) {
	if message == "" {
		message = code.GetMessage(code.ErrSuccess)
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 success envelope
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail writes a failure envelope, deriving the HTTP status from the error code
func Fail(c *gin.Context, errorCode int, message string) {
	httpStatus := code.GetStatus(errorCode)
	if message == "" {
		message = code.GetMessage(errorCode)
	}

	c.JSON(httpStatus, Response{
		Success: false,
		Message: message,
	})
}

// ServerError writes a 500 envelope carrying the underlying error string
func ServerError(c *gin.Context, message string, err error) {
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// NotFound writes a 404 envelope
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	Fail(c, code.ErrRecordNotFound, message)
}

// Unauthorized writes a 401 envelope for a missing credential
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenMissing, "")
}

// Forbidden writes a 403 envelope
func Forbidden(c *gin.Context, message string) {
	Fail(c, code.ErrForbidden, message)
}
