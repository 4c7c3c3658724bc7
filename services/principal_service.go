package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/slicycode/file-drive/models"
	"github.com/slicycode/file-drive/repositories"

	"gorm.io/gorm"
)

// PrincipalService maps an authenticated identity to its stored user
// record and organization memberships.
type PrincipalService interface {
	// ResolveCaller looks up the user behind an identity token. An empty
	// token means no session and resolves to absent, not an error. A
	// non-empty token with no matching record is an inconsistency between
	// the identity provider and the store and fails with not found.
	ResolveCaller(ctx context.Context, token string) (models.User, bool, error)
	MembershipOf(user models.User, orgID string) (models.Role, bool)
}

type principalService struct {
	users repositories.UserRepository
	cache repositories.PrincipalCacheRepository
}

func NewPrincipalService(users repositories.UserRepository, cache repositories.PrincipalCacheRepository) PrincipalService {
	return &principalService{users: users, cache: cache}
}

func (s *principalService) ResolveCaller(ctx context.Context, token string) (models.User, bool, error) {
	if token == "" {
		return models.User{}, false, nil
	}

	if s.cache != nil {
		if user, ok, err := s.cache.Get(ctx, token); err == nil && ok {
			user.TokenIdentifier = token
			return user, true, nil
		}
	}

	user, err := s.users.GetByTokenIdentifier(ctx, nil, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, false, errNotFound("expected user record to exist for identity")
		}
		return models.User{}, false, newAppError(http.StatusInternalServerError, "failed to resolve caller", err)
	}

	if s.cache != nil {
		// Best effort; a cache miss next time just hits the store again.
		_ = s.cache.Set(ctx, token, user)
	}

	return user, true, nil
}

func (s *principalService) MembershipOf(user models.User, orgID string) (models.Role, bool) {
	return user.MembershipFor(orgID)
}
