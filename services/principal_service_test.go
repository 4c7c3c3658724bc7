package services

import (
	"context"
	"errors"
	"testing"

	"github.com/slicycode/file-drive/models"
)

func TestResolveCallerNoSession(t *testing.T) {
	svc := NewPrincipalService(newFakeUserRepo(), nil)

	_, ok, err := svc.ResolveCaller(context.Background(), "")
	if err != nil {
		t.Fatalf("no session must not error: %v", err)
	}
	if ok {
		t.Fatal("no session must resolve to absent")
	}
}

func TestResolveCallerMissingRecord(t *testing.T) {
	svc := NewPrincipalService(newFakeUserRepo(), nil)

	// A session whose user record is missing is an inconsistency, not a
	// silent absence.
	_, _, err := svc.ResolveCaller(context.Background(), "idp|ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResolveCallerPopulatesCache(t *testing.T) {
	users := newFakeUserRepo()
	cache := newFakePrincipalCache()
	users.addUser("idp|user_a", "user_a", models.OrgMembership{OrgID: "org_1", Role: models.RoleAdmin})
	svc := NewPrincipalService(users, cache)

	user, ok, err := svc.ResolveCaller(context.Background(), "idp|user_a")
	if err != nil || !ok {
		t.Fatalf("resolve: ok=%v err=%v", ok, err)
	}
	if _, cached, _ := cache.Get(context.Background(), "idp|user_a"); !cached {
		t.Fatal("expected resolved user to be cached")
	}

	// Second resolve is served from the cache and keeps the identity.
	delete(users.usersByToken, "idp|user_a")
	again, ok, err := svc.ResolveCaller(context.Background(), "idp|user_a")
	if err != nil || !ok {
		t.Fatalf("cached resolve: ok=%v err=%v", ok, err)
	}
	if again.ID != user.ID || again.TokenIdentifier != "idp|user_a" {
		t.Fatalf("unexpected cached user: %+v", again)
	}
	if _, found := again.MembershipFor("org_1"); !found {
		t.Fatal("cached user lost memberships")
	}
}

func TestMembershipOf(t *testing.T) {
	svc := NewPrincipalService(newFakeUserRepo(), nil)
	user := models.User{Memberships: []models.OrgMembership{{OrgID: "org_1", Role: models.RoleAdmin}}}

	role, ok := svc.MembershipOf(user, "org_1")
	if !ok || role != models.RoleAdmin {
		t.Fatalf("unexpected membership: %v %v", role, ok)
	}
	if _, ok := svc.MembershipOf(user, "org_2"); ok {
		t.Fatal("expected absent membership")
	}
}
