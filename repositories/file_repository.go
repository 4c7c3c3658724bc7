package repositories

import (
	"context"

	"github.com/slicycode/file-drive/models"

	"gorm.io/gorm"
)

type GormFileRepository struct {
	db *gorm.DB
}

func NewGormFileRepository(db *gorm.DB) *GormFileRepository {
	return &GormFileRepository{db: db}
}

func (r *GormFileRepository) Create(_ context.Context, tx *gorm.DB, file *models.File) error {
	return useTx(r.db, tx).Create(file).Error
}

func (r *GormFileRepository) GetByID(_ context.Context, tx *gorm.DB, fileID uint) (models.File, error) {
	var file models.File
	err := useTx(r.db, tx).First(&file, fileID).Error
	return file, err
}

func (r *GormFileRepository) ListByOrg(_ context.Context, tx *gorm.DB, orgID string) ([]models.File, error) {
	var files []models.File
	err := useTx(r.db, tx).Where("org_id = ?", orgID).Order("created_at DESC").Find(&files).Error
	return files, err
}

func (r *GormFileRepository) UpdateByID(_ context.Context, tx *gorm.DB, fileID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.File{}).Where("id = ?", fileID).Updates(updates).Error
}

func (r *GormFileRepository) ListMarkedForDeletion(_ context.Context, tx *gorm.DB) ([]models.File, error) {
	var files []models.File
	err := useTx(r.db, tx).Where("should_delete = ?", true).Find(&files).Error
	return files, err
}

func (r *GormFileRepository) DeleteByID(_ context.Context, tx *gorm.DB, fileID uint) error {
	return useTx(r.db, tx).Delete(&models.File{}, fileID).Error
}
