// Package repositorytest provides in-memory repository fakes for tests.
package repositorytest

import (
	"context"
	"sync"

	"github.com/ridwanfathin/cognito-webhook-service/internal/domain"
	"github.com/ridwanfathin/cognito-webhook-service/internal/repository"
)

// FakeUserRepository is a test-only fake implementing repository.UserRepository.
// It mirrors the upsert semantics of the Postgres implementation and exposes
// error fields for behavior injection.
type FakeUserRepository struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	UpsertErr error
	GetErr    error
	Calls     int
}

var _ repository.UserRepository = (*FakeUserRepository)(nil)

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (f *FakeUserRepository) UpsertUser(_ context.Context, user *domain.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls++
	if f.UpsertErr != nil {
		return "", f.UpsertErr
	}

	if existing, ok := f.users[user.CognitoUserID]; ok {
		existing.Email = user.Email
		existing.Name = user.Name
		existing.PictureURL = user.PictureURL
		existing.UpdatedAt = user.UpdatedAt
		return existing.ID, nil
	}

	stored := *user
	f.users[user.CognitoUserID] = &stored
	return stored.ID, nil
}

func (f *FakeUserRepository) GetUserByCognitoID(_ context.Context, cognitoUserID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.GetErr != nil {
		return nil, f.GetErr
	}
	user, ok := f.users[cognitoUserID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// Count returns the number of stored records
func (f *FakeUserRepository) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}
