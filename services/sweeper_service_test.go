package services

import (
	"context"
	"errors"
	"testing"

	"github.com/slicycode/file-drive/models"
)

func TestSweepPurgesMarkedFilesOnly(t *testing.T) {
	fx := newFileFixture()
	owner := fx.users.addUser("idp|user_a", "user_a", models.OrgMembership{OrgID: "org_1", Role: models.RoleAdmin})

	keep := fx.seedFile(t, owner, "org_1", "keep.pdf", models.FileTypePDF)
	gone := fx.seedFile(t, owner, "org_1", "gone.pdf", models.FileTypePDF)
	other := fx.seedFile(t, owner, "org_2", "other.csv", models.FileTypeCSV)
	fx.blobs.addBlob(keep.BlobID)
	fx.blobs.addBlob(gone.BlobID)
	fx.blobs.addBlob(other.BlobID)

	if err := fx.svc.SoftDelete(context.Background(), "idp|user_a", gone.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	// Sweep runs across all organizations.
	if err := fx.files.UpdateByID(context.Background(), nil, other.ID, map[string]interface{}{"should_delete": true}); err != nil {
		t.Fatalf("mark other org file: %v", err)
	}

	sweeper := NewSweeperService(fakeTxManager{}, fx.files, fx.favorites, fx.blobs)
	purged, err := sweeper.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if purged != 2 {
		t.Fatalf("expected 2 purged files, got %d", purged)
	}

	if _, err := fx.files.GetByID(context.Background(), nil, gone.ID); err == nil {
		t.Fatal("purged file metadata still present")
	}
	if fx.blobs.blobs[gone.BlobID] {
		t.Fatal("purged file blob still present")
	}
	if _, err := fx.files.GetByID(context.Background(), nil, keep.ID); err != nil {
		t.Fatalf("live file was purged: %v", err)
	}
	if !fx.blobs.blobs[keep.BlobID] {
		t.Fatal("live file blob was deleted")
	}
}

func TestSweepRemovesDependentFavorites(t *testing.T) {
	fx := newFileFixture()
	owner := fx.users.addUser("idp|user_a", "user_a", models.OrgMembership{OrgID: "org_1", Role: models.RoleAdmin})
	fx.users.addUser("idp|user_b", "user_b", models.OrgMembership{OrgID: "org_1", Role: models.RoleMember})

	file := fx.seedFile(t, owner, "org_1", "report.pdf", models.FileTypePDF)
	fx.blobs.addBlob(file.BlobID)

	for _, token := range []string{"idp|user_a", "idp|user_b"} {
		if _, err := fx.favSvc.ToggleFavorite(context.Background(), token, file.ID); err != nil {
			t.Fatalf("toggle seed: %v", err)
		}
	}
	if err := fx.svc.SoftDelete(context.Background(), "idp|user_a", file.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	sweeper := NewSweeperService(fakeTxManager{}, fx.files, fx.favorites, fx.blobs)
	if _, err := sweeper.Sweep(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if len(fx.favorites.favorites) != 0 {
		t.Fatalf("expected favorites purged with the file, %d remain", len(fx.favorites.favorites))
	}
}

func TestSweepKeepsMetadataWhenBlobDeleteFails(t *testing.T) {
	fx := newFileFixture()
	owner := fx.users.addUser("idp|user_a", "user_a", models.OrgMembership{OrgID: "org_1", Role: models.RoleAdmin})

	stuck := fx.seedFile(t, owner, "org_1", "stuck.pdf", models.FileTypePDF)
	ok := fx.seedFile(t, owner, "org_1", "ok.pdf", models.FileTypePDF)
	fx.blobs.addBlob(stuck.BlobID)
	fx.blobs.addBlob(ok.BlobID)
	fx.blobs.deleteErrs[stuck.BlobID] = errors.New("transient blob error")

	for _, f := range []models.File{stuck, ok} {
		if err := fx.svc.SoftDelete(context.Background(), "idp|user_a", f.ID); err != nil {
			t.Fatalf("soft delete: %v", err)
		}
	}

	sweeper := NewSweeperService(fakeTxManager{}, fx.files, fx.favorites, fx.blobs)
	purged, err := sweeper.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged file, got %d", purged)
	}

	// Metadata stays until the blob is confirmed gone.
	got, err := fx.files.GetByID(context.Background(), nil, stuck.ID)
	if err != nil {
		t.Fatalf("file with failed blob delete was purged: %v", err)
	}
	if !got.ShouldDelete {
		t.Fatal("file must stay marked for the next run")
	}

	// Next run succeeds once the blob store recovers.
	delete(fx.blobs.deleteErrs, stuck.BlobID)
	purged, err = sweeper.Sweep(context.Background())
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if purged != 1 {
		t.Fatalf("expected retry to purge 1 file, got %d", purged)
	}
}

func TestSweepToleratesAbsentBlob(t *testing.T) {
	fx := newFileFixture()
	owner := fx.users.addUser("idp|user_a", "user_a", models.OrgMembership{OrgID: "org_1", Role: models.RoleAdmin})

	// Blob already gone from a partial prior run.
	file := fx.seedFile(t, owner, "org_1", "orphan.pdf", models.FileTypePDF)
	if err := fx.svc.SoftDelete(context.Background(), "idp|user_a", file.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	sweeper := NewSweeperService(fakeTxManager{}, fx.files, fx.favorites, fx.blobs)
	purged, err := sweeper.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged file, got %d", purged)
	}
}

func TestSweepEmptyIsNoop(t *testing.T) {
	fx := newFileFixture()

	sweeper := NewSweeperService(fakeTxManager{}, fx.files, fx.favorites, fx.blobs)
	purged, err := sweeper.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if purged != 0 {
		t.Fatalf("expected 0 purged files, got %d", purged)
	}
}
