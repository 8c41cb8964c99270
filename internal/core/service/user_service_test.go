package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
)

func seededUserRepo() *stubUserRepo {
	repo := newStubUserRepo()
	repo.seed(domain.User{
		ID:        "u1",
		Username:  "bayla",
		Email:     "bay@ex.com",
		Role:      domain.RoleUser,
		Favorites: []string{"52772"},
		CreatedAt: baseTime,
	})
	return repo
}

func TestUserService_Me(t *testing.T) {
	svc := NewUserService(seededUserRepo(), zerolog.Nop())

	p, err := svc.Me(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Username != "bayla" || p.Email != "bay@ex.com" || p.Role != domain.RoleUser {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if !reflect.DeepEqual(p.Favorites, []string{"52772"}) {
		t.Fatalf("unexpected favorites: %v", p.Favorites)
	}
	if p.SavedList == nil || len(p.SavedList) != 0 {
		t.Fatalf("expected empty non-nil saved list, got %#v", p.SavedList)
	}
	if !p.CreatedAt.Equal(baseTime) {
		t.Fatalf("unexpected createdAt: %v", p.CreatedAt)
	}
}

func TestUserService_Me_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Me(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ToggleFavorite_AddRemove(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.ToggleFavorite(context.Background(), "u1", " 53049 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Added || !reflect.DeepEqual(res.Items, []string{"52772", "53049"}) {
		t.Fatalf("unexpected result: %+v", res)
	}

	res, err = svc.ToggleFavorite(context.Background(), "u1", "52772")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Added || !reflect.DeepEqual(res.Items, []string{"53049"}) {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !reflect.DeepEqual(repo.byID["u1"].Favorites, []string{"53049"}) {
		t.Fatalf("store not updated: %v", repo.byID["u1"].Favorites)
	}
}

func TestUserService_Toggle_TwiceRestoresMembership(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	// present -> absent -> present
	first, err := svc.ToggleFavorite(ctx, "u1", "52772")
	if err != nil || first.Added {
		t.Fatalf("expected removal, got %+v %v", first, err)
	}
	second, err := svc.ToggleFavorite(ctx, "u1", "52772")
	if err != nil || !second.Added {
		t.Fatalf("expected re-add, got %+v %v", second, err)
	}
	if !reflect.DeepEqual(second.Items, []string{"52772"}) {
		t.Fatalf("expected original membership, got %v", second.Items)
	}

	// absent -> present -> absent on the saved list
	if _, err := svc.ToggleSavedList(ctx, "u1", "x1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := svc.ToggleSavedList(ctx, "u1", "x1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Added || len(res.Items) != 0 {
		t.Fatalf("expected empty saved list, got %+v", res)
	}
}

func TestUserService_Toggle_CollectionsAreIndependent(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.ToggleSavedList(context.Background(), "u1", "52772")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Added || !reflect.DeepEqual(res.Items, []string{"52772"}) {
		t.Fatalf("unexpected saved list: %+v", res)
	}
	if !reflect.DeepEqual(repo.byID["u1"].Favorites, []string{"52772"}) {
		t.Fatalf("favorites changed: %v", repo.byID["u1"].Favorites)
	}
}

func TestUserService_Toggle_Validation(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.ToggleFavorite(context.Background(), "u1", "   "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("expected no store writes")
	}
}

func TestUserService_Toggle_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.ToggleSavedList(context.Background(), "ghost", "1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Toggle_SaveFailure(t *testing.T) {
	repo := seededUserRepo()
	repo.saveErr = domain.ErrStoreUnavailable
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.ToggleFavorite(context.Background(), "u1", "1"); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
