package repository

import (
	"context"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
)

// UserRepository defines user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

// TokenRepository persists opaque bearer tokens, one per user.
type TokenRepository interface {
	Create(ctx context.Context, t *entity.AuthToken) error
	GetByUserID(ctx context.Context, userID int64) (*entity.AuthToken, error)
	GetUserByKey(ctx context.Context, key string) (*entity.User, error)
}
