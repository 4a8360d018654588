package model

import "github.com/ridwanfathin/cognito-webhook-service/internal/domain"

// RootResponse represents the response of the liveness endpoint
type RootResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse represents the response of the detailed health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// WebhookResponse mirrors the Lambda-style envelope Cognito integrations expect.
// Body is either a string (ignored events) or a WebhookResultBody.
type WebhookResponse struct {
	StatusCode int         `json:"statusCode"`
	Body       interface{} `json:"body" swaggertype:"object"`
}

// WebhookResultBody represents the result of a reconciled event
type WebhookResultBody struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
}

// TestWebhookResponse represents the response of the synthetic test webhook
type TestWebhookResponse struct {
	Message  string              `json:"message"`
	UserID   string              `json:"user_id"`
	TestData domain.CognitoEvent `json:"test_data"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}
