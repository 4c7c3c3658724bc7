package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/slicycode/file-drive/models"
	"github.com/slicycode/file-drive/repositories"

	"gorm.io/gorm"
)

type FavoriteService interface {
	// ToggleFavorite flips the caller's favorite on a file and reports the
	// resulting state. Org-member access suffices; ownership is not needed.
	ToggleFavorite(ctx context.Context, token string, fileID uint) (bool, error)
	ListFavorites(ctx context.Context, token string, orgID string) ([]models.Favorite, error)
}

type favoriteService struct {
	txManager TxManager
	access    AccessService
	favorites repositories.FavoriteRepository
}

func NewFavoriteService(txManager TxManager, access AccessService, favorites repositories.FavoriteRepository) FavoriteService {
	return &favoriteService{txManager: txManager, access: access, favorites: favorites}
}

func (s *favoriteService) ToggleFavorite(ctx context.Context, token string, fileID uint) (bool, error) {
	user, file, _, err := s.access.AuthorizeFileAccess(ctx, token, fileID)
	if err != nil {
		return false, err
	}

	var favorited bool
	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		existing, err := s.favorites.GetByUserAndFile(ctx, tx, user.ID, file.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			favorited = true
			return s.favorites.Create(ctx, tx, &models.Favorite{
				UserID: user.ID,
				OrgID:  file.OrgID,
				FileID: file.ID,
			})
		}
		favorited = false
		return s.favorites.DeleteByID(ctx, tx, existing.ID)
	})
	if err != nil {
		return false, newAppError(http.StatusInternalServerError, "failed to toggle favorite", err)
	}

	return favorited, nil
}

func (s *favoriteService) ListFavorites(ctx context.Context, token string, orgID string) ([]models.Favorite, error) {
	user, _, err := s.access.AuthorizeOrgAccess(ctx, token, orgID)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrAccessDenied) {
			return []models.Favorite{}, nil
		}
		return nil, err
	}

	favorites, err := s.favorites.ListByUserAndOrg(ctx, nil, user.ID, orgID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list favorites", err)
	}
	return favorites, nil
}
