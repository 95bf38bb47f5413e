package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
	repo "github.com/omarFareed23/recipe-api/internal/domain/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateTag = errors.New("tag name already exists for this user")
)

// TagService applies per-owner scoping to every tag operation.
type TagService struct {
	Repo   repo.TagRepository
	Logger *logrus.Logger
}

func NewTagService(tags repo.TagRepository, logger *logrus.Logger) *TagService {
	return &TagService{Repo: tags, Logger: logger}
}

func (s *TagService) List(ctx context.Context, ownerID int64) ([]entity.Tag, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *TagService) Get(ctx context.Context, id, ownerID int64) (*entity.Tag, error) {
	t, err := s.Repo.GetByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create stores a tag for the caller. The owner comes from the authenticated
// identity, never from the payload.
func (s *TagService) Create(ctx context.Context, ownerID int64, name string) (*entity.Tag, error) {
	t := &entity.Tag{UserID: ownerID, Name: name}
	if err := s.Repo.Create(ctx, t); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateTag
		}
		return nil, err
	}
	return t, nil
}

type UpdateTagInput struct {
	Name *string
}

func (s *TagService) Update(ctx context.Context, id, ownerID int64, in UpdateTagInput) (*entity.Tag, error) {
	t, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicate):
			return nil, ErrDuplicateTag
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TagService) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.Repo.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
