package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ridwanfathin/cognito-webhook-service/internal/database"
	"github.com/ridwanfathin/cognito-webhook-service/internal/domain"
)

// PostgresUserRepository implements UserRepository using PostgreSQL
type PostgresUserRepository struct {
	db    *database.PostgresDB
	table string
}

// NewPostgresUserRepository creates a new PostgreSQL user repository.
// table may be schema-qualified ("app.users"); it is quoted as an identifier.
func NewPostgresUserRepository(db *database.PostgresDB, table string) UserRepository {
	return &PostgresUserRepository{
		db:    db,
		table: quoteTable(table),
	}
}

func quoteTable(table string) string {
	return pgx.Identifier(strings.Split(strings.TrimSpace(table), ".")).Sanitize()
}

// UpsertUser creates the user or refreshes email, name, picture_url and updated_at
// of the existing record in one statement, relying on the unique constraint on
// cognito_user_id. On conflict the original id is returned.
func (r *PostgresUserRepository) UpsertUser(ctx context.Context, user *domain.User) (string, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, cognito_user_id, email, name, picture_url, provider, created_at, updated_at, is_active, onboarding_completed, preferences)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (cognito_user_id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			picture_url = EXCLUDED.picture_url,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`, r.table)

	preferences := user.Preferences
	if preferences == nil {
		preferences = map[string]interface{}{}
	}

	var id string
	err := r.db.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(
			ctx,
			query,
			user.ID,
			user.CognitoUserID,
			user.Email,
			user.Name,
			user.PictureURL,
			user.Provider,
			user.CreatedAt,
			user.UpdatedAt,
			user.IsActive,
			user.OnboardingCompleted,
			preferences,
		).Scan(&id)
	})
	if err != nil {
		return "", fmt.Errorf("failed to upsert user: %w", err)
	}

	return id, nil
}

// GetUserByCognitoID retrieves a user by the identity provider's user id
func (r *PostgresUserRepository) GetUserByCognitoID(ctx context.Context, cognitoUserID string) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT id, cognito_user_id, email, COALESCE(name, ''), COALESCE(picture_url, ''), COALESCE(provider, ''),
			is_active, onboarding_completed, COALESCE(preferences, '{}'::jsonb), created_at, updated_at
		FROM %s
		WHERE cognito_user_id = $1
	`, r.table)

	user := &domain.User{}
	err := r.db.GetPool().QueryRow(ctx, query, cognitoUserID).Scan(
		&user.ID,
		&user.CognitoUserID,
		&user.Email,
		&user.Name,
		&user.PictureURL,
		&user.Provider,
		&user.IsActive,
		&user.OnboardingCompleted,
		&user.Preferences,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by cognito id: %w", err)
	}

	return user, nil
}
