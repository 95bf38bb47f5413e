package application

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
	repo "github.com/omarFareed23/recipe-api/internal/domain/repository"
)

// RecipeService applies per-owner scoping to every recipe operation.
// Attached tags are not required to belong to the recipe's owner.
type RecipeService struct {
	Repo   repo.RecipeRepository
	Logger *logrus.Logger
}

func NewRecipeService(recipes repo.RecipeRepository, logger *logrus.Logger) *RecipeService {
	return &RecipeService{Repo: recipes, Logger: logger}
}

func (s *RecipeService) List(ctx context.Context, ownerID int64) ([]entity.Recipe, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *RecipeService) Get(ctx context.Context, id, ownerID int64) (*entity.Recipe, error) {
	r, err := s.Repo.GetByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

type CreateRecipeInput struct {
	Title       string
	TimeMinutes int
	Price       decimal.Decimal
	Link        string
	Description string
	TagIDs      []int64
}

// Create stores a recipe for the caller. The owner comes from the
// authenticated identity, never from the payload.
func (s *RecipeService) Create(ctx context.Context, ownerID int64, in CreateRecipeInput) (*entity.Recipe, error) {
	r := &entity.Recipe{
		UserID:      ownerID,
		Title:       in.Title,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price,
		Link:        in.Link,
		Description: in.Description,
	}
	if err := s.Repo.Create(ctx, r, in.TagIDs); err != nil {
		return nil, err
	}
	return r, nil
}

type UpdateRecipeInput struct {
	Title       *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Link        *string
	Description *string
	TagIDs      []int64 // nil leaves the tag set untouched
}

// Update overwrites the fields present in the input; nil fields keep their
// stored values.
func (s *RecipeService) Update(ctx context.Context, id, ownerID int64, in UpdateRecipeInput) (*entity.Recipe, error) {
	r, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.TimeMinutes != nil {
		r.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		r.Price = *in.Price
	}
	if in.Link != nil {
		r.Link = *in.Link
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if err := s.Repo.Update(ctx, r, in.TagIDs); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *RecipeService) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.Repo.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
