package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/cognito-webhook-service/internal/logging"
)

const acceptedTrigger = "PostConfirmation_ConfirmSignUp"

func TestEventInterpreter_Interpret(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		want    *struct{ id, email, name, picture string }
	}{
		{
			name: "extracts attributes from accepted event",
			body: `{
				"version": "1",
				"region": "us-east-1",
				"userPoolId": "us-east-1_abc",
				"userName": "u1",
				"callerContext": {"clientId": "xyz"},
				"triggerSource": "PostConfirmation_ConfirmSignUp",
				"request": {"userAttributes": {"email": "a@b.com", "name": "A", "picture": "http://x/p.jpg", "email_verified": "true"}},
				"response": {}
			}`,
			want: &struct{ id, email, name, picture string }{"u1", "a@b.com", "A", "http://x/p.jpg"},
		},
		{
			name: "optional attributes may be absent",
			body: `{"userName": "u2", "triggerSource": "PostConfirmation_ConfirmSignUp", "request": {"userAttributes": {"email": "b@b.com"}}}`,
			want: &struct{ id, email, name, picture string }{"u2", "b@b.com", "", ""},
		},
		{
			name: "trims whitespace",
			body: `{"userName": " u3 ", "triggerSource": "PostConfirmation_ConfirmSignUp", "request": {"userAttributes": {"email": " c@b.com "}}}`,
			want: &struct{ id, email, name, picture string }{"u3", "c@b.com", "", ""},
		},
		{
			name:    "non JSON body is malformed",
			body:    `not json`,
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "empty body is malformed",
			body:    ``,
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "JSON array is malformed",
			body:    `[1, 2]`,
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "truncated object is malformed",
			body:    `{"triggerSource": "PostConfirmation_ConfirmSignUp"`,
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "non string trigger source is malformed",
			body:    `{"triggerSource": 42}`,
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "other trigger source is ignored",
			body:    `{"userName": "u1", "triggerSource": "PreSignUp_SignUp", "request": {"userAttributes": {"email": "a@b.com"}}}`,
			wantErr: ErrEventIgnored,
		},
		{
			name:    "ignored before field validation",
			body:    `{"triggerSource": "PostConfirmation_ConfirmForgotPassword", "request": {"userAttributes": {"name": "A"}}}`,
			wantErr: ErrEventIgnored,
		},
		{
			name:    "ignored even when other fields have the wrong shape",
			body:    `{"triggerSource": "CustomMessage_SignUp", "userName": 12, "request": "nope"}`,
			wantErr: ErrEventIgnored,
		},
		{
			name:    "missing trigger source is ignored",
			body:    `{"userName": "u1"}`,
			wantErr: ErrEventIgnored,
		},
		{
			name:    "missing email",
			body:    `{"userName": "u1", "triggerSource": "PostConfirmation_ConfirmSignUp", "request": {"userAttributes": {"name": "A"}}}`,
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "blank email",
			body:    `{"userName": "u1", "triggerSource": "PostConfirmation_ConfirmSignUp", "request": {"userAttributes": {"email": "   "}}}`,
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "missing user name",
			body:    `{"triggerSource": "PostConfirmation_ConfirmSignUp", "request": {"userAttributes": {"email": "a@b.com"}}}`,
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "missing request section",
			body:    `{"userName": "u1", "triggerSource": "PostConfirmation_ConfirmSignUp"}`,
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "accepted event with wrong attribute types is malformed",
			body:    `{"userName": "u1", "triggerSource": "PostConfirmation_ConfirmSignUp", "request": {"userAttributes": {"email": 7}}}`,
			wantErr: ErrMalformedPayload,
		},
	}

	interpreter := NewEventInterpreter(acceptedTrigger, logging.Discard())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := interpreter.Interpret([]byte(tt.body))

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.want.id, user.CognitoUserID)
			assert.Equal(t, tt.want.email, user.Email)
			assert.Equal(t, tt.want.name, user.Name)
			assert.Equal(t, tt.want.picture, user.PictureURL)
		})
	}
}

func TestEventInterpreter_ConfiguredTrigger(t *testing.T) {
	interpreter := NewEventInterpreter("PostConfirmation_ConfirmForgotPassword", logging.Discard())
	assert.Equal(t, "PostConfirmation_ConfirmForgotPassword", interpreter.TriggerSource())

	_, err := interpreter.Interpret([]byte(`{"userName": "u1", "triggerSource": "PostConfirmation_ConfirmSignUp", "request": {"userAttributes": {"email": "a@b.com"}}}`))
	assert.ErrorIs(t, err, ErrEventIgnored)

	user, err := interpreter.Interpret([]byte(`{"userName": "u1", "triggerSource": "PostConfirmation_ConfirmForgotPassword", "request": {"userAttributes": {"email": "a@b.com"}}}`))
	require.NoError(t, err)
	assert.Equal(t, "u1", user.CognitoUserID)
}
