package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/ridwanfathin/cognito-webhook-service/internal/database"
	"github.com/ridwanfathin/cognito-webhook-service/internal/domain"
	"github.com/ridwanfathin/cognito-webhook-service/internal/repository"
)

// UserService reconciles identity-provider users with the local user table
type UserService interface {
	// ReconcileUser upserts the user keyed on its Cognito user id and returns the record id.
	// Any storage failure is returned as *StorageError.
	ReconcileUser(ctx context.Context, user *domain.ExtractedUser) (string, error)
}

// userService implements UserService
type userService struct {
	userRepo        repository.UserRepository
	defaultProvider string
	logger          *log.Logger
	now             func() time.Time
	newID           func() string
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, defaultProvider string, logger *log.Logger) UserService {
	return &userService{
		userRepo:        userRepo,
		defaultProvider: defaultProvider,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
		newID:           uuid.NewString,
	}
}

func (s *userService) ReconcileUser(ctx context.Context, extracted *domain.ExtractedUser) (string, error) {
	user := domain.NewUser(s.newID(), extracted, s.defaultProvider, s.now())

	id, err := s.userRepo.UpsertUser(ctx, user)
	if err != nil {
		op := OpUpsert
		if errors.Is(err, database.ErrAcquireConnection) {
			op = OpAcquire
		}
		s.logger.Error().
			Err(err).
			Str("op", op).
			Str("cognito_user_id", extracted.CognitoUserID).
			Msg("error creating user in database")
		return "", &StorageError{Op: op, Err: err}
	}

	s.logger.Info().
		Str("email", extracted.Email).
		Str("cognito_user_id", extracted.CognitoUserID).
		Str("user_id", id).
		Msg("user reconciled")

	return id, nil
}
