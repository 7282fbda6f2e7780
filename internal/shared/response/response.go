package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/edumgt/eden-api/internal/shared/apperror"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
	Total int `json:"total,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func Conflict(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}

// FromError maps a service failure to an HTTP response.
// Internal faults are logged with their cause and surfaced opaquely.
func FromError(c *gin.Context, err error) {
	appErr := apperror.As(err)

	switch appErr.Kind {
	case apperror.KindValidation:
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", appErr.Message, appErr.Violations)
	case apperror.KindNoRecognizedField:
		ErrorResponse(c, http.StatusBadRequest, "NO_RECOGNIZED_FIELD", appErr.Message)
	case apperror.KindNotFound:
		ErrorResponse(c, http.StatusBadRequest, "NOT_FOUND", appErr.Message)
	case apperror.KindConflict:
		ErrorResponse(c, http.StatusConflict, "CONFLICT", appErr.Message)
	case apperror.KindUnauthorized:
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", appErr.Message)
	default:
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(appErr.Err).
			Msg("Internal fault")
		InternalServerError(c, "internal server error")
	}
}
