package repository

import (
	"context"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
)

// RecipeRepository scopes every read and write to the owning user.
// Lookups for rows owned by someone else behave as if the row is absent.
type RecipeRepository interface {
	Create(ctx context.Context, r *entity.Recipe, tagIDs []int64) error
	GetByID(ctx context.Context, id, ownerID int64) (*entity.Recipe, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Recipe, error)
	Update(ctx context.Context, r *entity.Recipe, tagIDs []int64) error
	Delete(ctx context.Context, id, ownerID int64) error
}

// TagRepository scopes every read and write to the owning user.
type TagRepository interface {
	Create(ctx context.Context, t *entity.Tag) error
	GetByID(ctx context.Context, id, ownerID int64) (*entity.Tag, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Tag, error)
	Update(ctx context.Context, t *entity.Tag) error
	Delete(ctx context.Context, id, ownerID int64) error
}
