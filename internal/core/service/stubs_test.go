package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	nextID  int
	findErr error // returned by FindByEmail/FindByID when set
	// raceOnCreate makes FindByEmail miss while Create still hits the unique index.
	raceOnCreate bool
	saveErr      error
	saves        int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Favorites = append([]string(nil), u.Favorites...)
	clone.SavedList = append([]string(nil), u.SavedList...)
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.raceOnCreate {
		return nil, domain.ErrUserNotFound
	}
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byID[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	if _, ok := r.byID[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.saves++
	r.byID[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// seed inserts a user directly, bypassing signup.
func (r *stubUserRepo) seed(u domain.User) *domain.User {
	r.byID[u.ID] = cloneUser(&u)
	return cloneUser(&u)
}

// ---------------------------------------------------------------------------
// In-memory recipe repository and cache
// ---------------------------------------------------------------------------

type stubRecipeRepo struct {
	byID    map[string]*domain.Recipe
	nextID  int
	listErr error
	lists   int
	// afterRead runs once the listing snapshot is taken, before it is returned.
	afterRead func()
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{byID: make(map[string]*domain.Recipe)}
}

func (r *stubRecipeRepo) Create(_ context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	r.nextID++
	clone := *rec
	clone.ID = fmt.Sprintf("recipe-%d", r.nextID)
	stored := clone
	r.byID[clone.ID] = &stored
	return &clone, nil
}

func (r *stubRecipeRepo) List(_ context.Context) ([]*domain.Recipe, error) {
	r.lists++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Recipe, 0, len(r.byID))
	for _, rec := range r.byID {
		clone := *rec
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return out, nil
}

func (r *stubRecipeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubRecipeCache struct {
	items       []ports.RecipeSummary
	found       bool
	generation  int64
	getErr      error
	setErr      error
	invalidated int
	skipped     int
}

func (c *stubRecipeCache) Get(_ context.Context) ([]ports.RecipeSummary, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.items, c.found, nil
}

func (c *stubRecipeCache) Generation(_ context.Context) (int64, error) {
	return c.generation, nil
}

func (c *stubRecipeCache) Set(_ context.Context, generation int64, items []ports.RecipeSummary) (bool, error) {
	if c.setErr != nil {
		return false, c.setErr
	}
	if generation != c.generation {
		c.skipped++
		return false, nil
	}
	c.items = items
	c.found = true
	return true, nil
}

func (c *stubRecipeCache) Invalidate(_ context.Context) error {
	c.invalidated++
	c.generation++
	c.items = nil
	c.found = false
	return nil
}

var baseTime = time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
