package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
	"github.com/omarFareed23/recipe-api/internal/domain/repository"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Create(ctx context.Context, t *entity.AuthToken) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO auth_tokens (key, user_id)
		VALUES ($1, $2)
		RETURNING created_at
	`, t.Key, t.UserID)

	if err := row.Scan(&t.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

func (r *TokenRepository) GetByUserID(ctx context.Context, userID int64) (*entity.AuthToken, error) {
	t := &entity.AuthToken{}
	row := r.pool.QueryRow(ctx, `
		SELECT key, user_id, created_at
		FROM auth_tokens
		WHERE user_id = $1
	`, userID)

	if err := row.Scan(&t.Key, &t.UserID, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select token: %w", err)
	}
	return t, nil
}

// GetUserByKey resolves a bearer key straight to its user in one query.
func (r *TokenRepository) GetUserByKey(ctx context.Context, key string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT u.id, u.email, u.password_hash, u.name, u.is_active, u.is_staff, u.is_superuser, u.created_at, u.updated_at
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.key = $1
	`, key)

	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.IsActive,
		&u.IsStaff, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select token user: %w", err)
	}
	return u, nil
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
