package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/slicycode/file-drive/models"
	"github.com/slicycode/file-drive/repositories"

	"gorm.io/gorm"
)

type ScopeKind string

const (
	// ScopeOrganization is access through an explicit org membership.
	ScopeOrganization ScopeKind = "organization"
	// ScopePersonal is access to the caller's own implicit workspace.
	ScopePersonal ScopeKind = "personal"
)

// AccessScope is the resolved access a user has to an organization ID.
// Personal scope carries no role; the owner can do everything in it.
type AccessScope struct {
	Kind ScopeKind
	Role models.Role
}

// ScopeFor resolves how, if at all, a user may access an organization:
// through a membership entry, or because the organization is the user's
// own personal workspace.
func ScopeFor(user models.User, orgID string) (AccessScope, bool) {
	if role, ok := user.MembershipFor(orgID); ok {
		return AccessScope{Kind: ScopeOrganization, Role: role}, true
	}
	if user.PersonalOrg != "" && user.PersonalOrg == orgID {
		return AccessScope{Kind: ScopePersonal}, true
	}
	return AccessScope{}, false
}

// CanMutate reports whether the user may delete or restore the file:
// the file's creator, an org admin, or the personal-workspace owner.
func (s AccessScope) CanMutate(user models.User, file models.File) bool {
	if file.UserID == user.ID {
		return true
	}
	return s.Kind == ScopePersonal || s.Role == models.RoleAdmin
}

// AccessService gates every file and favorite operation. Denials surface
// as explicit conditions; read paths translate them to empty results.
type AccessService interface {
	AuthorizeOrgAccess(ctx context.Context, token string, orgID string) (models.User, AccessScope, error)
	AuthorizeFileAccess(ctx context.Context, token string, fileID uint) (models.User, models.File, AccessScope, error)
	AuthorizeMutation(user models.User, file models.File, scope AccessScope) error
}

type accessService struct {
	principals PrincipalService
	files      repositories.FileRepository
}

func NewAccessService(principals PrincipalService, files repositories.FileRepository) AccessService {
	return &accessService{principals: principals, files: files}
}

func (s *accessService) AuthorizeOrgAccess(ctx context.Context, token string, orgID string) (models.User, AccessScope, error) {
	user, ok, err := s.principals.ResolveCaller(ctx, token)
	if err != nil {
		return models.User{}, AccessScope{}, err
	}
	if !ok {
		return models.User{}, AccessScope{}, errUnauthenticated("you must be signed in")
	}

	scope, ok := ScopeFor(user, orgID)
	if !ok {
		return models.User{}, AccessScope{}, errAccessDenied("you are not a member of this organization")
	}

	return user, scope, nil
}

func (s *accessService) AuthorizeFileAccess(ctx context.Context, token string, fileID uint) (models.User, models.File, AccessScope, error) {
	file, err := s.files.GetByID(ctx, nil, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, models.File{}, AccessScope{}, errNotFound("file does not exist")
		}
		return models.User{}, models.File{}, AccessScope{}, newAppError(http.StatusInternalServerError, "failed to load file", err)
	}

	user, scope, err := s.AuthorizeOrgAccess(ctx, token, file.OrgID)
	if err != nil {
		return models.User{}, models.File{}, AccessScope{}, err
	}

	return user, file, scope, nil
}

func (s *accessService) AuthorizeMutation(user models.User, file models.File, scope AccessScope) error {
	if !scope.CanMutate(user, file) {
		return errAccessDenied("you have no access to modify this file")
	}
	return nil
}
