package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
	"github.com/omarFareed23/recipe-api/internal/domain/repository"
)

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

// Create inserts the recipe and its tag links in one transaction.
func (r *RecipeRepository) Create(ctx context.Context, rec *entity.Recipe, tagIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO recipes (user_id, title, time_minutes, price, link, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, rec.UserID, rec.Title, rec.TimeMinutes, rec.Price, rec.Link, rec.Description)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}

	if err := insertTagLinks(ctx, tx, rec.ID, tagIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	rec.Tags, err = r.tagsForRecipe(ctx, rec.ID)
	return err
}

func (r *RecipeRepository) GetByID(ctx context.Context, id, ownerID int64) (*entity.Recipe, error) {
	rec := &entity.Recipe{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, time_minutes, price, link, description, created_at, updated_at
		FROM recipes
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)

	if err := row.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.TimeMinutes, &rec.Price,
		&rec.Link, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select recipe: %w", err)
	}

	var err error
	rec.Tags, err = r.tagsForRecipe(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *RecipeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Recipe, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, time_minutes, price, link, description, created_at, updated_at
		FROM recipes
		WHERE user_id = $1
		ORDER BY id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	recipes := []entity.Recipe{}
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.TimeMinutes, &rec.Price,
			&rec.Link, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range recipes {
		recipes[i].Tags, err = r.tagsForRecipe(ctx, recipes[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

// Update rewrites the row and, when tagIDs is non-nil, replaces the tag links.
// A nil tagIDs leaves existing links untouched (partial update semantics).
func (r *RecipeRepository) Update(ctx context.Context, rec *entity.Recipe, tagIDs []int64) error {
	rec.UpdatedAt = time.Now()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE recipes
		SET title = $1, time_minutes = $2, price = $3, link = $4, description = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`, rec.Title, rec.TimeMinutes, rec.Price, rec.Link, rec.Description, rec.UpdatedAt, rec.ID, rec.UserID)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	if tagIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, rec.ID); err != nil {
			return fmt.Errorf("clear tag links: %w", err)
		}
		if err := insertTagLinks(ctx, tx, rec.ID, tagIDs); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	rec.Tags, err = r.tagsForRecipe(ctx, rec.ID)
	return err
}

func (r *RecipeRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM recipes
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) tagsForRecipe(ctx context.Context, recipeID int64) ([]entity.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.user_id, t.name, t.created_at
		FROM tags t
		JOIN recipe_tags rt ON rt.tag_id = t.id
		WHERE rt.recipe_id = $1
		ORDER BY t.name DESC
	`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("recipe tags: %w", err)
	}
	defer rows.Close()

	tags := []entity.Tag{}
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func insertTagLinks(ctx context.Context, tx pgx.Tx, recipeID int64, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO recipe_tags (recipe_id, tag_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, recipeID, tagID); err != nil {
			return fmt.Errorf("link tag %d: %w", tagID, err)
		}
	}
	return nil
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
