package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/slicycode/file-drive/models"
	"github.com/slicycode/file-drive/repositories"
	"github.com/slicycode/file-drive/storage"

	"gorm.io/gorm"
)

// ListFilesInput narrows an organization's file listing. All filters are
// AND-combined; the zero value lists the org's live files.
type ListFilesInput struct {
	OrgID         string
	NameContains  string
	FavoritesOnly bool
	DeletedOnly   bool
	Type          models.FileType
}

type FileService interface {
	// RequestUploadSlot hands out a one-time presigned upload URL. The org
	// is not known yet at this point, so only a session is required.
	RequestUploadSlot(ctx context.Context, token string) (storage.UploadSlot, error)
	// CreateFile links an uploaded blob to a new metadata record. The MIME
	// type is validated server-side against the closed type table.
	CreateFile(ctx context.Context, token string, orgID string, name string, mimeType string, blobID string) (models.File, error)
	ListFiles(ctx context.Context, token string, in ListFilesInput) ([]models.File, error)
	SoftDelete(ctx context.Context, token string, fileID uint) error
	Restore(ctx context.Context, token string, fileID uint) error
	DownloadURL(ctx context.Context, token string, fileID uint) (string, error)
}

type fileService struct {
	txManager  TxManager
	principals PrincipalService
	access     AccessService
	files      repositories.FileRepository
	favorites  repositories.FavoriteRepository
	blobs      storage.BlobStore
}

func NewFileService(
	txManager TxManager,
	principals PrincipalService,
	access AccessService,
	files repositories.FileRepository,
	favorites repositories.FavoriteRepository,
	blobs storage.BlobStore,
) FileService {
	return &fileService{
		txManager:  txManager,
		principals: principals,
		access:     access,
		files:      files,
		favorites:  favorites,
		blobs:      blobs,
	}
}

func (s *fileService) RequestUploadSlot(ctx context.Context, token string) (storage.UploadSlot, error) {
	_, ok, err := s.principals.ResolveCaller(ctx, token)
	if err != nil {
		return storage.UploadSlot{}, err
	}
	if !ok {
		return storage.UploadSlot{}, errUnauthenticated("you must be signed in to upload a file")
	}

	slot, err := s.blobs.GenerateUploadURL(ctx)
	if err != nil {
		return storage.UploadSlot{}, newAppError(http.StatusInternalServerError, "failed to create upload url", err)
	}
	return slot, nil
}

func (s *fileService) CreateFile(ctx context.Context, token string, orgID string, name string, mimeType string, blobID string) (models.File, error) {
	user, _, err := s.access.AuthorizeOrgAccess(ctx, token, orgID)
	if err != nil {
		return models.File{}, err
	}

	fileType, ok := models.FileTypeFromMIME(mimeType)
	if !ok {
		return models.File{}, errUnsupportedType("unsupported file type " + mimeType)
	}

	file := models.File{
		Name:   name,
		OrgID:  orgID,
		Type:   fileType,
		BlobID: blobID,
		UserID: user.ID,
	}
	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.files.Create(ctx, tx, &file)
	})
	if err != nil {
		return models.File{}, newAppError(http.StatusInternalServerError, "failed to create file", err)
	}

	return file, nil
}

func (s *fileService) ListFiles(ctx context.Context, token string, in ListFilesInput) ([]models.File, error) {
	user, _, err := s.access.AuthorizeOrgAccess(ctx, token, in.OrgID)
	if err != nil {
		// Reads degrade: no session or no membership lists nothing.
		if errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrAccessDenied) {
			return []models.File{}, nil
		}
		return nil, err
	}

	files, err := s.files.ListByOrg(ctx, nil, in.OrgID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list files", err)
	}

	if in.NameContains != "" {
		needle := strings.ToLower(in.NameContains)
		files = keepFiles(files, func(f models.File) bool {
			return strings.Contains(strings.ToLower(f.Name), needle)
		})
	}

	if in.FavoritesOnly {
		favorites, err := s.favorites.ListByUserAndOrg(ctx, nil, user.ID, in.OrgID)
		if err != nil {
			return nil, newAppError(http.StatusInternalServerError, "failed to list favorites", err)
		}
		favoriteIDs := make(map[uint]struct{}, len(favorites))
		for _, fav := range favorites {
			favoriteIDs[fav.FileID] = struct{}{}
		}
		files = keepFiles(files, func(f models.File) bool {
			_, ok := favoriteIDs[f.ID]
			return ok
		})
	}

	// Deleted and live files partition the org: the default listing never
	// shows soft-deleted files, the trash listing shows only them.
	files = keepFiles(files, func(f models.File) bool {
		return f.ShouldDelete == in.DeletedOnly
	})

	if in.Type != "" {
		files = keepFiles(files, func(f models.File) bool {
			return f.Type == in.Type
		})
	}

	return files, nil
}

func keepFiles(files []models.File, keep func(models.File) bool) []models.File {
	out := files[:0]
	for _, f := range files {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s *fileService) SoftDelete(ctx context.Context, token string, fileID uint) error {
	return s.setShouldDelete(ctx, token, fileID, true)
}

func (s *fileService) Restore(ctx context.Context, token string, fileID uint) error {
	return s.setShouldDelete(ctx, token, fileID, false)
}

func (s *fileService) setShouldDelete(ctx context.Context, token string, fileID uint, shouldDelete bool) error {
	user, file, scope, err := s.access.AuthorizeFileAccess(ctx, token, fileID)
	if err != nil {
		return err
	}
	if err := s.access.AuthorizeMutation(user, file, scope); err != nil {
		return err
	}

	updates := map[string]interface{}{"should_delete": shouldDelete}
	if shouldDelete {
		updates["deleted_at"] = time.Now()
	} else {
		updates["deleted_at"] = nil
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.files.UpdateByID(ctx, tx, fileID, updates)
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update file", err)
	}
	return nil
}

func (s *fileService) DownloadURL(ctx context.Context, token string, fileID uint) (string, error) {
	_, file, _, err := s.access.AuthorizeFileAccess(ctx, token, fileID)
	if err != nil {
		return "", err
	}

	url, err := s.blobs.URLFor(ctx, file.BlobID)
	if err != nil {
		return "", newAppError(http.StatusInternalServerError, "failed to create download url", err)
	}
	return url, nil
}
