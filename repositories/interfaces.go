package repositories

import (
	"context"

	"github.com/slicycode/file-drive/models"

	"gorm.io/gorm"
)

type TxManager interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (models.User, error)
	GetByTokenIdentifier(ctx context.Context, tx *gorm.DB, token string) (models.User, error)
	UpdateByTokenIdentifier(ctx context.Context, tx *gorm.DB, token string, updates map[string]interface{}) error
	UpsertMembership(ctx context.Context, tx *gorm.DB, membership *models.OrgMembership) error
	UpdateMembershipRole(ctx context.Context, tx *gorm.DB, userID uint, orgID string, role models.Role) error
}

type FileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, file *models.File) error
	GetByID(ctx context.Context, tx *gorm.DB, fileID uint) (models.File, error)
	ListByOrg(ctx context.Context, tx *gorm.DB, orgID string) ([]models.File, error)
	UpdateByID(ctx context.Context, tx *gorm.DB, fileID uint, updates map[string]interface{}) error
	ListMarkedForDeletion(ctx context.Context, tx *gorm.DB) ([]models.File, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, fileID uint) error
}

type FavoriteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, favorite *models.Favorite) error
	GetByUserAndFile(ctx context.Context, tx *gorm.DB, userID uint, fileID uint) (models.Favorite, error)
	ListByUserAndOrg(ctx context.Context, tx *gorm.DB, userID uint, orgID string) ([]models.Favorite, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, favoriteID uint) error
	DeleteByFileID(ctx context.Context, tx *gorm.DB, fileID uint) error
}

// PrincipalCacheRepository is a read-through cache of resolved users keyed
// by identity token identifier.
type PrincipalCacheRepository interface {
	Get(ctx context.Context, token string) (models.User, bool, error)
	Set(ctx context.Context, token string, user models.User) error
	Invalidate(ctx context.Context, token string) error
}

type Container struct {
	TxManager      TxManager
	Users          UserRepository
	Files          FileRepository
	Favorites      FavoriteRepository
	PrincipalCache PrincipalCacheRepository
}
