package domain

// CognitoEvent is the payload Cognito sends for a user pool trigger.
// Only the fields this service reads are typed; the rest are kept opaque.
type CognitoEvent struct {
	Version       string                 `json:"version"`
	Region        string                 `json:"region"`
	UserPoolID    string                 `json:"userPoolId"`
	UserName      string                 `json:"userName"`
	CallerContext map[string]interface{} `json:"callerContext,omitempty"`
	TriggerSource string                 `json:"triggerSource"`
	Request       CognitoEventRequest    `json:"request"`
	Response      map[string]interface{} `json:"response"`
}

// CognitoEventRequest is the request section of a trigger event
type CognitoEventRequest struct {
	UserAttributes UserAttributes `json:"userAttributes"`
}

// UserAttributes is the subset of Cognito user attributes the service persists
type UserAttributes struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}
