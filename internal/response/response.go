// Package response provides the JSON error envelope and request parameter
// helpers shared by HTTP handlers.
package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the error envelope.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL_ERROR"
)

// ErrorResponse represents the error response structure.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Error writes an error response.
func Error(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// AbortWithError writes an error response and stops the handler chain.
func AbortWithError(c *gin.Context, code string, message string, statusCode int) {
	Error(c, code, message, statusCode)
	c.Abort()
}

// BadRequest creates 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, CodeInvalidRequest, message, http.StatusBadRequest)
}

// NotFound creates 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, CodeNotFound, message, http.StatusNotFound)
}

// Conflict creates 409 error response.
func Conflict(c *gin.Context, message string) {
	Error(c, CodeConflict, message, http.StatusConflict)
}

// Internal creates 500 error response.
func Internal(c *gin.Context) {
	Error(c, CodeInternal, "internal server error", http.StatusInternalServerError)
}

// PathID parses a positive integer path parameter. On failure it writes a
// 400 response and returns false.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// QueryID parses a positive integer query parameter. A missing optional
// parameter yields 0 and true.
func QueryID(c *gin.Context, name string, required bool) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		if required {
			BadRequest(c, name+" parameter is required")
			return 0, false
		}
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
