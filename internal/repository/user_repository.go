package repository

import (
	"context"
	"errors"

	"github.com/ridwanfathin/cognito-webhook-service/internal/domain"
)

// ErrUserNotFound is returned when no record exists for the requested identity
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// UpsertUser inserts user, or refreshes the mutable attributes of the record that
	// already holds user.CognitoUserID. It returns the id of the stored record.
	UpsertUser(ctx context.Context, user *domain.User) (string, error)
	GetUserByCognitoID(ctx context.Context, cognitoUserID string) (*domain.User, error)
}
