package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phuslu/log"

	"github.com/ridwanfathin/cognito-webhook-service/internal/domain"
)

// EventInterpreter turns raw trigger payloads into the user attributes to reconcile
type EventInterpreter interface {
	Interpret(raw []byte) (*domain.ExtractedUser, error)
	TriggerSource() string
}

// eventInterpreter implements EventInterpreter
type eventInterpreter struct {
	triggerSource string
	validate      *validator.Validate
	logger        *log.Logger
}

// NewEventInterpreter creates an interpreter accepting only triggerSource events
func NewEventInterpreter(triggerSource string, logger *log.Logger) EventInterpreter {
	return &eventInterpreter{
		triggerSource: triggerSource,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        logger,
	}
}

// eventEnvelope carries only the discriminator so type checking runs before
// the rest of the payload is inspected
type eventEnvelope struct {
	TriggerSource string `json:"triggerSource"`
}

// TriggerSource returns the accepted trigger source
func (i *eventInterpreter) TriggerSource() string {
	return i.triggerSource
}

// Interpret validates raw and extracts the user attributes.
// Errors: ErrMalformedPayload, ErrEventIgnored, ErrMissingRequiredFields.
func (i *eventInterpreter) Interpret(raw []byte) (*domain.ExtractedUser, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformedPayload)
	}

	var envelope eventEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	i.logger.Info().Str("trigger_source", envelope.TriggerSource).Msg("received cognito event")

	if envelope.TriggerSource != i.triggerSource {
		i.logger.Warn().
			Str("trigger_source", envelope.TriggerSource).
			Str("accepted", i.triggerSource).
			Msg("ignoring event with unexpected trigger source")
		return nil, ErrEventIgnored
	}

	var event domain.CognitoEvent
	if err := json.Unmarshal(trimmed, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return i.extract(&event)
}

// extract pulls the reconciled attributes out of a decoded event
func (i *eventInterpreter) extract(event *domain.CognitoEvent) (*domain.ExtractedUser, error) {
	attrs := event.Request.UserAttributes
	user := &domain.ExtractedUser{
		CognitoUserID: strings.TrimSpace(event.UserName),
		Email:         strings.TrimSpace(attrs.Email),
		Name:          strings.TrimSpace(attrs.Name),
		PictureURL:    strings.TrimSpace(attrs.Picture),
	}

	if err := i.validate.Struct(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingRequiredFields, err)
	}

	return user, nil
}
