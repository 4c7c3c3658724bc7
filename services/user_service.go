package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/slicycode/file-drive/models"
	"github.com/slicycode/file-drive/repositories"

	"gorm.io/gorm"
)

type UserProfileOutput struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UserService covers the identity-sync write path (driven by the external
// identity provider's webhooks) and the profile read path.
type UserService interface {
	CreateUser(ctx context.Context, token string, name string, avatar string) (models.User, error)
	UpdateUser(ctx context.Context, token string, name string, avatar string) error
	AddOrgMembership(ctx context.Context, token string, orgID string, role models.Role) error
	UpdateMembershipRole(ctx context.Context, token string, orgID string, role models.Role) error
	GetMe(ctx context.Context, token string) (models.User, bool, error)
	GetProfile(ctx context.Context, userID uint) (UserProfileOutput, error)
}

type userService struct {
	txManager  TxManager
	principals PrincipalService
	users      repositories.UserRepository
	cache      repositories.PrincipalCacheRepository
}

func NewUserService(
	txManager TxManager,
	principals PrincipalService,
	users repositories.UserRepository,
	cache repositories.PrincipalCacheRepository,
) UserService {
	return &userService{txManager: txManager, principals: principals, users: users, cache: cache}
}

// personalOrgFromToken derives the user's implicit personal workspace ID
// from the identity token identifier, which has the form "<issuer>|<id>".
func personalOrgFromToken(token string) string {
	if i := strings.LastIndex(token, "|"); i >= 0 {
		return token[i+1:]
	}
	return token
}

func (s *userService) CreateUser(ctx context.Context, token string, name string, avatar string) (models.User, error) {
	user := models.User{
		TokenIdentifier: token,
		Name:            name,
		Avatar:          avatar,
		PersonalOrg:     personalOrgFromToken(token),
	}
	err := s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.users.Create(ctx, tx, &user)
	})
	if err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to create user", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, token string, name string, avatar string) error {
	err := s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.users.UpdateByTokenIdentifier(ctx, tx, token, map[string]interface{}{
			"name":   name,
			"avatar": avatar,
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("expected user record to exist for identity")
		}
		return newAppError(http.StatusInternalServerError, "failed to update user", err)
	}

	s.invalidate(ctx, token)
	return nil
}

func (s *userService) AddOrgMembership(ctx context.Context, token string, orgID string, role models.Role) error {
	user, err := s.users.GetByTokenIdentifier(ctx, nil, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("expected user record to exist for identity")
		}
		return newAppError(http.StatusInternalServerError, "failed to load user", err)
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.users.UpsertMembership(ctx, tx, &models.OrgMembership{
			UserID: user.ID,
			OrgID:  orgID,
			Role:   role,
		})
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to add membership", err)
	}

	s.invalidate(ctx, token)
	return nil
}

func (s *userService) UpdateMembershipRole(ctx context.Context, token string, orgID string, role models.Role) error {
	user, err := s.users.GetByTokenIdentifier(ctx, nil, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("expected user record to exist for identity")
		}
		return newAppError(http.StatusInternalServerError, "failed to load user", err)
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.users.UpdateMembershipRole(ctx, tx, user.ID, orgID, role)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("expected membership to exist")
		}
		return newAppError(http.StatusInternalServerError, "failed to update membership role", err)
	}

	s.invalidate(ctx, token)
	return nil
}

func (s *userService) GetMe(ctx context.Context, token string) (models.User, bool, error) {
	return s.principals.ResolveCaller(ctx, token)
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (UserProfileOutput, error) {
	user, err := s.users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserProfileOutput{}, errNotFound("user does not exist")
		}
		return UserProfileOutput{}, newAppError(http.StatusInternalServerError, "failed to load user", err)
	}
	return UserProfileOutput{Name: user.Name, Avatar: user.Avatar}, nil
}

func (s *userService) invalidate(ctx context.Context, token string) {
	if s.cache == nil {
		return
	}
	// Best effort; the TTL bounds staleness if the delete fails.
	_ = s.cache.Invalidate(ctx, token)
}
