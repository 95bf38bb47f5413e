package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
	repo "github.com/omarFareed23/recipe-api/internal/domain/repository"
	"github.com/omarFareed23/recipe-api/pkg/helpers"
	"github.com/omarFareed23/recipe-api/pkg/validation"
)

var (
	ErrMissingEmail       = errors.New("user must have an email address")
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrDuplicateEmail     = errors.New("email address is already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService owns account creation, credential checks, and bearer tokens.
type UserService struct {
	Repo   repo.UserRepository
	Tokens repo.TokenRepository
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, tokens repo.TokenRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: users, Tokens: tokens, Logger: logger}
}

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
}

// Create registers a regular user. Staff and superuser flags stay off.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	return s.createUser(ctx, in, false, false)
}

// CreateSuperuser registers a user with staff and superuser flags set.
// Validation and hashing follow the same path as Create.
func (s *UserService) CreateSuperuser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	return s.createUser(ctx, in, true, true)
}

func (s *UserService) createUser(ctx context.Context, in CreateUserInput, staff, super bool) (*entity.User, error) {
	if in.Email == "" {
		return nil, ErrMissingEmail
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, ErrInvalidEmail
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:       validation.NormalizeEmail(in.Email),
		Password:    hash,
		Name:        in.Name,
		IsActive:    true,
		IsStaff:     staff,
		IsSuperuser: super,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and returns the user's bearer token, creating
// one if the user has none. Unknown email and wrong password collapse into
// the same error so callers cannot probe for accounts. The password is used
// exactly as given; surrounding whitespace is significant.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil || u == nil {
		return "", ErrInvalidCredentials
	}
	if !u.IsActive {
		return "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokenFor(ctx, u.ID)
}

func (s *UserService) tokenFor(ctx context.Context, userID int64) (string, error) {
	t, err := s.Tokens.GetByUserID(ctx, userID)
	if err == nil {
		return t.Key, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}

	key, err := helpers.GenerateTokenKey()
	if err != nil {
		return "", err
	}
	tok := &entity.AuthToken{Key: key, UserID: userID}
	if err := s.Tokens.Create(ctx, tok); err != nil {
		// Concurrent login created a row first; reuse it.
		if errors.Is(err, repo.ErrDuplicate) {
			if t, gErr := s.Tokens.GetByUserID(ctx, userID); gErr == nil {
				return t.Key, nil
			}
		}
		return "", err
	}
	return tok.Key, nil
}

// ResolveToken maps a bearer key to its user. Every owner-scoped operation
// goes through here to establish caller identity.
func (s *UserService) ResolveToken(ctx context.Context, key string) (*entity.User, error) {
	if key == "" {
		return nil, ErrInvalidToken
	}
	u, err := s.Tokens.GetUserByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidToken
	}
	return u, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name     *string
	Password *string
}

// UpdateProfile changes the owner's name and/or password. Nil fields keep
// their stored values; a new password is re-hashed before storage.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
