package services

import (
	"context"
	"errors"
	"testing"

	"github.com/slicycode/file-drive/models"
)

func TestToggleFavoriteIsSelfInverse(t *testing.T) {
	fx := newFileFixture()
	owner := fx.users.addUser("idp|user_a", "user_a", models.OrgMembership{OrgID: "org_1", Role: models.RoleMember})
	file := fx.seedFile(t, owner, "org_1", "report.pdf", models.FileTypePDF)

	favorited, err := fx.favSvc.ToggleFavorite(context.Background(), "idp|user_a", file.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !favorited {
		t.Fatal("first toggle should favorite")
	}
	if len(fx.favorites.favorites) != 1 {
		t.Fatalf("expected exactly one favorite record, got %d", len(fx.favorites.favorites))
	}

	favorited, err = fx.favSvc.ToggleFavorite(context.Background(), "idp|user_a", file.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if favorited {
		t.Fatal("second toggle should unfavorite")
	}
	if len(fx.favorites.favorites) != 0 {
		t.Fatalf("expected no favorite records after toggle pair, got %d", len(fx.favorites.favorites))
	}
}

func TestToggleFavoriteNeedsOnlyOrgAccess(t *testing.T) {
	fx := newFileFixture()
	owner := fx.users.addUser("idp|user_a", "user_a", models.OrgMembership{OrgID: "org_1", Role: models.RoleMember})
	fx.users.addUser("idp|user_b", "user_b", models.OrgMembership{OrgID: "org_1", Role: models.RoleMember})
	file := fx.seedFile(t, owner, "org_1", "report.pdf", models.FileTypePDF)

	// A non-owning member can favorite.
	favorited, err := fx.favSvc.ToggleFavorite(context.Background(), "idp|user_b", file.ID)
	if err != nil {
		t.Fatalf("member toggle: %v", err)
	}
	if !favorited {
		t.Fatal("member toggle should favorite")
	}
}

func TestToggleFavoriteCrossOrgDenied(t *testing.T) {
	fx := newFileFixture()
	owner := fx.users.addUser("idp|user_a", "user_a", models.OrgMembership{OrgID: "org_1", Role: models.RoleMember})
	fx.users.addUser("idp|user_d", "user_d", models.OrgMembership{OrgID: "org_2", Role: models.RoleMember})
	file := fx.seedFile(t, owner, "org_1", "report.pdf", models.FileTypePDF)

	_, err := fx.favSvc.ToggleFavorite(context.Background(), "idp|user_d", file.ID)
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestListFavoritesDegradesToEmpty(t *testing.T) {
	fx := newFileFixture()
	fx.users.addUser("idp|user_d", "user_d", models.OrgMembership{OrgID: "org_2", Role: models.RoleMember})

	favorites, err := fx.favSvc.ListFavorites(context.Background(), "", "org_1")
	if err != nil {
		t.Fatalf("unauthenticated list must not error: %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("expected empty favorites, got %d", len(favorites))
	}

	favorites, err = fx.favSvc.ListFavorites(context.Background(), "idp|user_d", "org_1")
	if err != nil {
		t.Fatalf("outsider list must not error: %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("expected empty favorites for outsider, got %d", len(favorites))
	}
}

func TestListFavoritesScopedToOrg(t *testing.T) {
	fx := newFileFixture()
	owner := fx.users.addUser("idp|user_a", "user_a",
		models.OrgMembership{OrgID: "org_1", Role: models.RoleMember},
		models.OrgMembership{OrgID: "org_2", Role: models.RoleMember},
	)
	one := fx.seedFile(t, owner, "org_1", "one.pdf", models.FileTypePDF)
	two := fx.seedFile(t, owner, "org_2", "two.pdf", models.FileTypePDF)

	for _, f := range []models.File{one, two} {
		if _, err := fx.favSvc.ToggleFavorite(context.Background(), "idp|user_a", f.ID); err != nil {
			t.Fatalf("toggle seed: %v", err)
		}
	}

	favorites, err := fx.favSvc.ListFavorites(context.Background(), "idp|user_a", "org_1")
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].FileID != one.ID {
		t.Fatalf("unexpected favorites for org_1: %+v", favorites)
	}
}
