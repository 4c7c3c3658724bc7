package repositories

import (
	"context"

	"github.com/slicycode/file-drive/models"

	"gorm.io/gorm"
)

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) Create(_ context.Context, tx *gorm.DB, favorite *models.Favorite) error {
	return useTx(r.db, tx).Create(favorite).Error
}

func (r *GormFavoriteRepository) GetByUserAndFile(_ context.Context, tx *gorm.DB, userID uint, fileID uint) (models.Favorite, error) {
	var favorite models.Favorite
	err := useTx(r.db, tx).Where("user_id = ? AND file_id = ?", userID, fileID).First(&favorite).Error
	return favorite, err
}

func (r *GormFavoriteRepository) ListByUserAndOrg(_ context.Context, tx *gorm.DB, userID uint, orgID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := useTx(r.db, tx).Where("user_id = ? AND org_id = ?", userID, orgID).Order("created_at ASC").Find(&favorites).Error
	return favorites, err
}

func (r *GormFavoriteRepository) DeleteByID(_ context.Context, tx *gorm.DB, favoriteID uint) error {
	return useTx(r.db, tx).Delete(&models.Favorite{}, favoriteID).Error
}

func (r *GormFavoriteRepository) DeleteByFileID(_ context.Context, tx *gorm.DB, fileID uint) error {
	return useTx(r.db, tx).Where("file_id = ?", fileID).Delete(&models.Favorite{}).Error
}
