package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridwanfathin/cognito-webhook-service/internal/model"
)

// HTTP status codes as constants for consistency
const (
	StatusOK                  = http.StatusOK
	StatusBadRequest          = http.StatusBadRequest
	StatusInternalServerError = http.StatusInternalServerError
)

// Common error messages
const (
	ErrInvalidJSON          = "Invalid JSON"
	ErrMissingUserData      = "Missing required user data"
	ErrCreatingUserPrefix   = "Error creating user: "
	ErrInternalServerPrefix = "Internal server error: "
	ErrTestFailedPrefix     = "Test failed: "
)

// Response messages
const (
	MsgEventIgnored      = "Event ignored"
	MsgUserCreated       = "User created successfully"
	MsgTestWebhookPassed = "Test webhook executed successfully"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, detail string) {
	response := model.ErrorResponse{
		Status: http.StatusText(statusCode),
		Detail: detail,
	}
	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, detail string) {
	respondWithError(c, StatusBadRequest, detail)
}

// respondInternalServerError sends a 500 Internal Server Error response
func respondInternalServerError(c *gin.Context, detail string) {
	respondWithError(c, StatusInternalServerError, detail)
}

// respondOK sends a 200 OK response with data
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(StatusOK, data)
}
