package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"github.com/ridwanfathin/cognito-webhook-service/internal/config"
	"github.com/ridwanfathin/cognito-webhook-service/internal/domain"
	"github.com/ridwanfathin/cognito-webhook-service/internal/model"
	"github.com/ridwanfathin/cognito-webhook-service/internal/service"
)

// WebhookHandler handles Cognito trigger webhooks
type WebhookHandler struct {
	interpreter service.EventInterpreter
	userService service.UserService
	cfg         config.WebhookConfig
	logger      *log.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(interpreter service.EventInterpreter, userService service.UserService, cfg config.WebhookConfig, logger *log.Logger) *WebhookHandler {
	return &WebhookHandler{
		interpreter: interpreter,
		userService: userService,
		cfg:         cfg,
		logger:      logger,
	}
}

// CognitoWebhook handles the POST /cognito-webhook endpoint
// @Summary Handle a Cognito PostConfirmation event
// @Description Creates the user record for a confirmed Cognito user, or refreshes it if it already exists. Events with another trigger source are acknowledged and ignored.
// @Tags webhook
// @Accept json
// @Produce json
// @Param event body domain.CognitoEvent true "Cognito trigger event"
// @Success 200 {object} model.WebhookResponse "User reconciled or event ignored"
// @Failure 400 {object} model.ErrorResponse "Invalid JSON or missing required user data"
// @Failure 500 {object} model.ErrorResponse "Storage failure"
// @Router /cognito-webhook [post]
func (h *WebhookHandler) CognitoWebhook(c *gin.Context) {
	body, err := readRawBody(c)
	if err != nil {
		logError(c, h.logger, "read_body_failed", err, nil)
		respondBadRequest(c, ErrInvalidJSON)
		return
	}

	extracted, err := h.interpreter.Interpret(body)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEventIgnored):
		respondOK(c, model.WebhookResponse{
			StatusCode: StatusOK,
			Body:       MsgEventIgnored,
		})
		return
	case errors.Is(err, service.ErrMalformedPayload):
		logError(c, h.logger, "invalid_json", err, nil)
		respondBadRequest(c, ErrInvalidJSON)
		return
	case errors.Is(err, service.ErrMissingRequiredFields):
		logError(c, h.logger, "missing_required_user_data", err, nil)
		respondBadRequest(c, ErrMissingUserData)
		return
	default:
		logError(c, h.logger, "cognito_event_failed", err, nil)
		respondInternalServerError(c, ErrInternalServerPrefix+err.Error())
		return
	}

	userID, err := h.userService.ReconcileUser(c.Request.Context(), extracted)
	if err != nil {
		fields := map[string]string{"cognito_user_id": extracted.CognitoUserID}
		var storageErr *service.StorageError
		if errors.As(err, &storageErr) {
			logError(c, h.logger, "user_reconcile_failed", err, fields)
			respondInternalServerError(c, ErrCreatingUserPrefix+storageErr.Err.Error())
			return
		}
		logError(c, h.logger, "cognito_event_failed", err, fields)
		respondInternalServerError(c, ErrInternalServerPrefix+err.Error())
		return
	}

	h.logger.Info().
		Str("email", extracted.Email).
		Str("user_id", userID).
		Msg("successfully processed PostConfirmation")

	respondOK(c, model.WebhookResponse{
		StatusCode: StatusOK,
		Body: model.WebhookResultBody{
			Message: MsgUserCreated,
			UserID:  userID,
			Email:   extracted.Email,
		},
	})
}

// TestWebhook handles the POST /test-webhook endpoint
// @Summary Simulate a Cognito PostConfirmation event
// @Description Reconciles a fixed sample user (test-user-123 / test@example.com) to verify the storage path end to end
// @Tags webhook
// @Produce json
// @Success 200 {object} model.TestWebhookResponse "Test event reconciled"
// @Failure 500 {object} model.ErrorResponse "Test failed"
// @Router /test-webhook [post]
func (h *WebhookHandler) TestWebhook(c *gin.Context) {
	event := h.sampleEvent()
	attrs := event.Request.UserAttributes

	userID, err := h.userService.ReconcileUser(c.Request.Context(), &domain.ExtractedUser{
		CognitoUserID: event.UserName,
		Email:         attrs.Email,
		Name:          attrs.Name,
		PictureURL:    attrs.Picture,
	})
	if err != nil {
		logError(c, h.logger, "test_webhook_failed", err, nil)
		respondInternalServerError(c, ErrTestFailedPrefix+err.Error())
		return
	}

	respondOK(c, model.TestWebhookResponse{
		Message:  MsgTestWebhookPassed,
		UserID:   userID,
		TestData: event,
	})
}

// sampleEvent builds the fixed event used by the test webhook
func (h *WebhookHandler) sampleEvent() domain.CognitoEvent {
	return domain.CognitoEvent{
		Version:       "1",
		Region:        h.cfg.TestRegion,
		UserPoolID:    h.cfg.TestUserPoolID,
		UserName:      "test-user-123",
		TriggerSource: h.interpreter.TriggerSource(),
		Request: domain.CognitoEventRequest{
			UserAttributes: domain.UserAttributes{
				Email:   "test@example.com",
				Name:    "Test User",
				Picture: "https://example.com/pic.jpg",
			},
		},
		Response: map[string]interface{}{},
	}
}

// RegisterRoutes registers webhook routes
func (h *WebhookHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/cognito-webhook", h.CognitoWebhook)
	router.POST("/test-webhook", h.TestWebhook)
}
