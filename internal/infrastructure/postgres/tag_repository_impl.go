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

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func (r *TagRepository) Create(ctx context.Context, t *entity.Tag) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tags (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, t.UserID, t.Name)

	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

func (r *TagRepository) GetByID(ctx context.Context, id, ownerID int64) (*entity.Tag, error) {
	t := &entity.Tag{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, created_at
		FROM tags
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)

	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select tag: %w", err)
	}
	return t, nil
}

func (r *TagRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, created_at
		FROM tags
		WHERE user_id = $1
		ORDER BY name DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := []entity.Tag{}
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *TagRepository) Update(ctx context.Context, t *entity.Tag) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tags
		SET name = $1
		WHERE id = $2 AND user_id = $3
	`, t.Name, t.ID, t.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("update tag: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TagRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM tags
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TagRepository = (*TagRepository)(nil)
