package domain

import (
	"time"
)

// User represents a user record reconciled from the identity provider
type User struct {
	ID                  string                 `json:"id"`
	CognitoUserID       string                 `json:"cognitoUserId"`
	Email               string                 `json:"email"`
	Name                string                 `json:"name"`
	PictureURL          string                 `json:"pictureUrl,omitempty"`
	Provider            string                 `json:"provider"`
	IsActive            bool                   `json:"isActive"`
	OnboardingCompleted bool                   `json:"onboardingCompleted"`
	Preferences         map[string]interface{} `json:"preferences"`
	CreatedAt           time.Time              `json:"createdAt"`
	UpdatedAt           time.Time              `json:"updatedAt"`
}

// NewUser builds a user record with creation defaults applied.
// The same timestamp is used for created_at and updated_at.
func NewUser(id string, extracted *ExtractedUser, provider string, now time.Time) *User {
	return &User{
		ID:                  id,
		CognitoUserID:       extracted.CognitoUserID,
		Email:               extracted.Email,
		Name:                extracted.Name,
		PictureURL:          extracted.PictureURL,
		Provider:            provider,
		IsActive:            true,
		OnboardingCompleted: false,
		Preferences:         map[string]interface{}{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ExtractedUser holds the attributes pulled out of an accepted event
type ExtractedUser struct {
	CognitoUserID string `json:"cognitoUserId" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Name          string `json:"name"`
	PictureURL    string `json:"pictureUrl"`
}
