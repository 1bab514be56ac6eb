package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeUnauthorized     ErrorCode = "unauthorized"
	errCodeMethodNotAllowed ErrorCode = "method_not_allowed"
	errCodeConflict         ErrorCode = "conflict"
	errCodeRateLimited      ErrorCode = "rate_limited"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
)

const internalErrorMessage = "Internal server error"

// errorResponse represents a standardized error response
type errorResponse struct {
	Error string    `json:"error"`
	Code  ErrorCode `json:"code"`
}

// leaderboardErrorResponse keeps the success envelope of the leaderboard endpoints
type leaderboardErrorResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error"`
	Code    ErrorCode `json:"code"`
}

// statusOf maps a classified error to an HTTP status, code and client-safe message
func statusOf(err error) (int, ErrorCode, string) {
	var e *domain.Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, errCodeInternalError, internalErrorMessage
	}

	switch e.Kind {
	case domain.KindValidation:
		return http.StatusBadRequest, errCodeBadRequest, e.Message
	case domain.KindNotFound:
		return http.StatusNotFound, errCodeNotFound, e.Message
	case domain.KindAuth:
		return http.StatusUnauthorized, errCodeUnauthorized, e.Message
	case domain.KindConflict:
		return http.StatusConflict, errCodeConflict, e.Message
	case domain.KindRateLimited:
		return http.StatusTooManyRequests, errCodeRateLimited, e.Message
	default:
		return http.StatusInternalServerError, errCodeInternalError, internalErrorMessage
	}
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, errorResponse{
		Error: message,
		Code:  code,
	})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message)
}

// respondDomainError classifies err, logging anything that becomes a 5xx
func respondDomainError(c *gin.Context, err error, fields ...zap.Field) {
	status, code, message := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.FullPath()))...)
	}
	respondWithError(c, status, code, message)
}

// respondLeaderboardError is respondDomainError with the leaderboard envelope
func respondLeaderboardError(c *gin.Context, err error, fields ...zap.Field) {
	status, code, message := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.FullPath()))...)
	}
	c.JSON(status, leaderboardErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}
