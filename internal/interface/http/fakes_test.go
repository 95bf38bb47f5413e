package handlers

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
	repo "github.com/omarFareed23/recipe-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// In-memory stores backing the handler tests. They enforce the same
// constraints as the Postgres schema: unique email, unique (owner, name)
// tags, owner-scoped lookups.

type store struct {
	nextID  int64
	users   map[int64]entity.User
	tokens  map[int64]entity.AuthToken
	tags    map[int64]entity.Tag
	recipes map[int64]entity.Recipe
	links   map[int64][]int64
}

func newStore() *store {
	return &store{
		users:   map[int64]entity.User{},
		tokens:  map[int64]entity.AuthToken{},
		tags:    map[int64]entity.Tag{},
		recipes: map[int64]entity.Recipe{},
		links:   map[int64][]int64{},
	}
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

type fakeUserRepo struct{ s *store }

func (f fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	for _, e := range f.s.users {
		if e.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	u.ID = f.s.id()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.s.users[u.ID] = *u
	return nil
}

func (f fakeUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := f.s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (f fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	if _, ok := f.s.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	f.s.users[u.ID] = *u
	return nil
}

type fakeTokenRepo struct{ s *store }

func (f fakeTokenRepo) Create(ctx context.Context, t *entity.AuthToken) error {
	if _, ok := f.s.tokens[t.UserID]; ok {
		return repo.ErrDuplicate
	}
	t.CreatedAt = time.Now()
	f.s.tokens[t.UserID] = *t
	return nil
}

func (f fakeTokenRepo) GetByUserID(ctx context.Context, userID int64) (*entity.AuthToken, error) {
	t, ok := f.s.tokens[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &t, nil
}

func (f fakeTokenRepo) GetUserByKey(ctx context.Context, key string) (*entity.User, error) {
	for uid, t := range f.s.tokens {
		if t.Key == key {
			return fakeUserRepo{f.s}.GetByID(ctx, uid)
		}
	}
	return nil, repo.ErrNotFound
}

type fakeTagRepo struct{ s *store }

func (f fakeTagRepo) Create(ctx context.Context, t *entity.Tag) error {
	for _, e := range f.s.tags {
		if e.UserID == t.UserID && e.Name == t.Name {
			return repo.ErrDuplicate
		}
	}
	t.ID = f.s.id()
	t.CreatedAt = time.Now()
	f.s.tags[t.ID] = *t
	return nil
}

func (f fakeTagRepo) GetByID(ctx context.Context, id, ownerID int64) (*entity.Tag, error) {
	t, ok := f.s.tags[id]
	if !ok || t.UserID != ownerID {
		return nil, repo.ErrNotFound
	}
	return &t, nil
}

func (f fakeTagRepo) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Tag, error) {
	out := []entity.Tag{}
	for _, t := range f.s.tags {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (f fakeTagRepo) Update(ctx context.Context, t *entity.Tag) error {
	cur, ok := f.s.tags[t.ID]
	if !ok || cur.UserID != t.UserID {
		return repo.ErrNotFound
	}
	for _, e := range f.s.tags {
		if e.ID != t.ID && e.UserID == t.UserID && e.Name == t.Name {
			return repo.ErrDuplicate
		}
	}
	f.s.tags[t.ID] = *t
	return nil
}

func (f fakeTagRepo) Delete(ctx context.Context, id, ownerID int64) error {
	t, ok := f.s.tags[id]
	if !ok || t.UserID != ownerID {
		return repo.ErrNotFound
	}
	delete(f.s.tags, id)
	return nil
}

type fakeRecipeRepo struct{ s *store }

func (f fakeRecipeRepo) resolveTags(id int64) []entity.Tag {
	out := []entity.Tag{}
	for _, tagID := range f.s.links[id] {
		if t, ok := f.s.tags[tagID]; ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out
}

func (f fakeRecipeRepo) Create(ctx context.Context, r *entity.Recipe, tagIDs []int64) error {
	r.ID = f.s.id()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	f.s.recipes[r.ID] = *r
	f.s.links[r.ID] = append([]int64{}, tagIDs...)
	r.Tags = f.resolveTags(r.ID)
	return nil
}

func (f fakeRecipeRepo) GetByID(ctx context.Context, id, ownerID int64) (*entity.Recipe, error) {
	r, ok := f.s.recipes[id]
	if !ok || r.UserID != ownerID {
		return nil, repo.ErrNotFound
	}
	r.Tags = f.resolveTags(id)
	return &r, nil
}

func (f fakeRecipeRepo) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Recipe, error) {
	out := []entity.Recipe{}
	for _, r := range f.s.recipes {
		if r.UserID == ownerID {
			r.Tags = f.resolveTags(r.ID)
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f fakeRecipeRepo) Update(ctx context.Context, r *entity.Recipe, tagIDs []int64) error {
	cur, ok := f.s.recipes[r.ID]
	if !ok || cur.UserID != r.UserID {
		return repo.ErrNotFound
	}
	f.s.recipes[r.ID] = *r
	if tagIDs != nil {
		f.s.links[r.ID] = append([]int64{}, tagIDs...)
	}
	r.Tags = f.resolveTags(r.ID)
	return nil
}

func (f fakeRecipeRepo) Delete(ctx context.Context, id, ownerID int64) error {
	r, ok := f.s.recipes[id]
	if !ok || r.UserID != ownerID {
		return repo.ErrNotFound
	}
	delete(f.s.recipes, id)
	delete(f.s.links, id)
	return nil
}

var (
	_ repo.UserRepository   = fakeUserRepo{}
	_ repo.TokenRepository  = fakeTokenRepo{}
	_ repo.TagRepository    = fakeTagRepo{}
	_ repo.RecipeRepository = fakeRecipeRepo{}
)
