package repositories

import (
	"context"

	"github.com/slicycode/file-drive/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(_ context.Context, tx *gorm.DB, user *models.User) error {
	return useTx(r.db, tx).Create(user).Error
}

func (r *GormUserRepository) GetByID(_ context.Context, tx *gorm.DB, userID uint) (models.User, error) {
	var user models.User
	err := useTx(r.db, tx).Preload("Memberships").First(&user, userID).Error
	return user, err
}

func (r *GormUserRepository) GetByTokenIdentifier(_ context.Context, tx *gorm.DB, token string) (models.User, error) {
	var user models.User
	err := useTx(r.db, tx).Preload("Memberships").Where("token_identifier = ?", token).First(&user).Error
	return user, err
}

func (r *GormUserRepository) UpdateByTokenIdentifier(_ context.Context, tx *gorm.DB, token string, updates map[string]interface{}) error {
	result := useTx(r.db, tx).Model(&models.User{}).Where("token_identifier = ?", token).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpsertMembership inserts a membership, updating the role in place if the
// (user, org) pair already exists.
func (r *GormUserRepository) UpsertMembership(_ context.Context, tx *gorm.DB, membership *models.OrgMembership) error {
	return useTx(r.db, tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "org_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(membership).Error
}

func (r *GormUserRepository) UpdateMembershipRole(_ context.Context, tx *gorm.DB, userID uint, orgID string, role models.Role) error {
	result := useTx(r.db, tx).Model(&models.OrgMembership{}).
		Where("user_id = ? AND org_id = ?", userID, orgID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
