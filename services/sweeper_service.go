package services

import (
	"context"
	"net/http"
	"time"

	"github.com/slicycode/file-drive/config"
	"github.com/slicycode/file-drive/logger"
	"github.com/slicycode/file-drive/repositories"
	"github.com/slicycode/file-drive/storage"

	"gorm.io/gorm"
)

// SweeperService permanently removes files marked for deletion. It runs
// outside the request path on a schedule and is not user-invocable.
type SweeperService interface {
	// Sweep purges all soft-deleted files across every organization and
	// returns how many were removed. Per-file failures are logged and the
	// file is left for the next run.
	Sweep(ctx context.Context) (int, error)
}

type sweeperService struct {
	txManager TxManager
	files     repositories.FileRepository
	favorites repositories.FavoriteRepository
	blobs     storage.BlobStore
}

func NewSweeperService(
	txManager TxManager,
	files repositories.FileRepository,
	favorites repositories.FavoriteRepository,
	blobs storage.BlobStore,
) SweeperService {
	return &sweeperService{
		txManager: txManager,
		files:     files,
		favorites: favorites,
		blobs:     blobs,
	}
}

func (s *sweeperService) Sweep(ctx context.Context) (int, error) {
	files, err := s.files.ListMarkedForDeletion(ctx, nil)
	if err != nil {
		return 0, newAppError(http.StatusInternalServerError, "failed to list files marked for deletion", err)
	}

	purged := 0
	for _, file := range files {
		// Blob first. Metadata is only removed after the blob is confirmed
		// gone; blob deletion is idempotent so re-runs are safe.
		if err := s.blobs.Delete(ctx, file.BlobID); err != nil {
			logger.Warnf("sweep: blob delete failed for file %d: %v", file.ID, err)
			continue
		}

		err := s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
			// Favorites referencing the file go with it.
			if err := s.favorites.DeleteByFileID(ctx, tx, file.ID); err != nil {
				return err
			}
			return s.files.DeleteByID(ctx, tx, file.ID)
		})
		if err != nil {
			logger.Warnf("sweep: metadata delete failed for file %d: %v", file.ID, err)
			continue
		}

		purged++
	}

	if purged > 0 {
		logger.Infof("sweep: purged %d files", purged)
	}
	return purged, nil
}

// StartSweeper runs the purge sweep on the configured interval.
func StartSweeper(sweeper SweeperService, cfg *config.SweeperConfig) {
	if !cfg.Enabled {
		return
	}

	interval := time.Duration(cfg.Interval) * time.Second
	if interval <= 0 {
		interval = time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if _, err := sweeper.Sweep(context.Background()); err != nil {
				logger.Warnf("sweep failed: %v", err)
			}
		}
	}()
}
