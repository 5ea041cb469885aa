package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes surfaced by the service layer. Handlers translate these to HTTP
// statuses; everything else is treated as an internal error.
const (
	CodeNotFound          = "notFound"
	CodeForbidden         = "forbidden"
	CodeInvalidTransition = "invalidTransition"
	CodeInvalidState      = "invalidState"
	CodeConflict          = "conflict"
	CodeInvalidArgument   = "invalidArgument"
	CodeInternal          = "internal"
)

// ServiceError carries a machine-readable code alongside a human-readable message.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewServiceError builds a ServiceError with a formatted message.
func NewServiceError(code, format string, args ...interface{}) error {
	return &ServiceError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// statusForCode maps service error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeInvalidTransition, CodeInvalidState, CodeInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondServiceError writes the appropriate HTTP response for a service-layer
// error. Unknown errors are masked as a generic internal error.
func RespondServiceError(c *gin.Context, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(statusForCode(svcErr.Code), gin.H{"error": svcErr.Message, "code": svcErr.Code})
		return
	}
	GetLogger().Error("unhandled service error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error", "code": CodeInternal})
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
