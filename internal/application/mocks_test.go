package application

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
	repo "github.com/omarFareed23/recipe-api/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// In-memory repositories mirroring the Postgres constraints: unique email,
// unique (owner, name) tag pairs, owner-scoped lookups.

type memUserRepo struct {
	nextID int64
	users  map[int64]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]entity.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	for _, e := range m.users {
		if e.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = *u
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) Update(ctx context.Context, u *entity.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	m.users[u.ID] = *u
	return nil
}

type memTokenRepo struct {
	users  *memUserRepo
	tokens map[int64]entity.AuthToken // by user id
}

func newMemTokenRepo(users *memUserRepo) *memTokenRepo {
	return &memTokenRepo{users: users, tokens: map[int64]entity.AuthToken{}}
}

func (m *memTokenRepo) Create(ctx context.Context, t *entity.AuthToken) error {
	if _, ok := m.tokens[t.UserID]; ok {
		return repo.ErrDuplicate
	}
	for _, e := range m.tokens {
		if e.Key == t.Key {
			return repo.ErrDuplicate
		}
	}
	t.CreatedAt = time.Now()
	m.tokens[t.UserID] = *t
	return nil
}

func (m *memTokenRepo) GetByUserID(ctx context.Context, userID int64) (*entity.AuthToken, error) {
	t, ok := m.tokens[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &t, nil
}

func (m *memTokenRepo) GetUserByKey(ctx context.Context, key string) (*entity.User, error) {
	for uid, t := range m.tokens {
		if t.Key == key {
			return m.users.GetByID(ctx, uid)
		}
	}
	return nil, repo.ErrNotFound
}

type memTagRepo struct {
	nextID int64
	tags   map[int64]entity.Tag
}

func newMemTagRepo() *memTagRepo {
	return &memTagRepo{tags: map[int64]entity.Tag{}}
}

func (m *memTagRepo) Create(ctx context.Context, t *entity.Tag) error {
	for _, e := range m.tags {
		if e.UserID == t.UserID && e.Name == t.Name {
			return repo.ErrDuplicate
		}
	}
	m.nextID++
	t.ID = m.nextID
	t.CreatedAt = time.Now()
	m.tags[t.ID] = *t
	return nil
}

func (m *memTagRepo) GetByID(ctx context.Context, id, ownerID int64) (*entity.Tag, error) {
	t, ok := m.tags[id]
	if !ok || t.UserID != ownerID {
		return nil, repo.ErrNotFound
	}
	return &t, nil
}

func (m *memTagRepo) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Tag, error) {
	out := []entity.Tag{}
	for _, t := range m.tags {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (m *memTagRepo) Update(ctx context.Context, t *entity.Tag) error {
	cur, ok := m.tags[t.ID]
	if !ok || cur.UserID != t.UserID {
		return repo.ErrNotFound
	}
	for _, e := range m.tags {
		if e.ID != t.ID && e.UserID == t.UserID && e.Name == t.Name {
			return repo.ErrDuplicate
		}
	}
	m.tags[t.ID] = *t
	return nil
}

func (m *memTagRepo) Delete(ctx context.Context, id, ownerID int64) error {
	t, ok := m.tags[id]
	if !ok || t.UserID != ownerID {
		return repo.ErrNotFound
	}
	delete(m.tags, id)
	return nil
}

type memRecipeRepo struct {
	nextID  int64
	recipes map[int64]entity.Recipe
	links   map[int64][]int64 // recipe id -> tag ids
	tags    *memTagRepo
}

func newMemRecipeRepo(tags *memTagRepo) *memRecipeRepo {
	return &memRecipeRepo{recipes: map[int64]entity.Recipe{}, links: map[int64][]int64{}, tags: tags}
}

func (m *memRecipeRepo) resolveTags(id int64) []entity.Tag {
	out := []entity.Tag{}
	for _, tagID := range m.links[id] {
		if t, ok := m.tags.tags[tagID]; ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out
}

func (m *memRecipeRepo) Create(ctx context.Context, r *entity.Recipe, tagIDs []int64) error {
	m.nextID++
	r.ID = m.nextID
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	m.recipes[r.ID] = *r
	m.links[r.ID] = append([]int64{}, tagIDs...)
	r.Tags = m.resolveTags(r.ID)
	return nil
}

func (m *memRecipeRepo) GetByID(ctx context.Context, id, ownerID int64) (*entity.Recipe, error) {
	r, ok := m.recipes[id]
	if !ok || r.UserID != ownerID {
		return nil, repo.ErrNotFound
	}
	r.Tags = m.resolveTags(id)
	return &r, nil
}

func (m *memRecipeRepo) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Recipe, error) {
	out := []entity.Recipe{}
	for _, r := range m.recipes {
		if r.UserID == ownerID {
			r.Tags = m.resolveTags(r.ID)
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memRecipeRepo) Update(ctx context.Context, r *entity.Recipe, tagIDs []int64) error {
	cur, ok := m.recipes[r.ID]
	if !ok || cur.UserID != r.UserID {
		return repo.ErrNotFound
	}
	r.UpdatedAt = time.Now()
	m.recipes[r.ID] = *r
	if tagIDs != nil {
		m.links[r.ID] = append([]int64{}, tagIDs...)
	}
	r.Tags = m.resolveTags(r.ID)
	return nil
}

func (m *memRecipeRepo) Delete(ctx context.Context, id, ownerID int64) error {
	r, ok := m.recipes[id]
	if !ok || r.UserID != ownerID {
		return repo.ErrNotFound
	}
	delete(m.recipes, id)
	delete(m.links, id)
	return nil
}

var (
	_ repo.UserRepository   = (*memUserRepo)(nil)
	_ repo.TokenRepository  = (*memTokenRepo)(nil)
	_ repo.TagRepository    = (*memTagRepo)(nil)
	_ repo.RecipeRepository = (*memRecipeRepo)(nil)
)
