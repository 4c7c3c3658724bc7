package storage

import "context"

// UploadSlot is a one-time presigned upload target. The client PUTs the
// file bytes to URL, then finalizes with BlobID.
type UploadSlot struct {
	BlobID string `json:"blob_id"`
	URL    string `json:"url"`
}

// BlobStore is the contract with external blob storage. The core never
// sees file bytes; it hands out presigned URLs and deletes by identifier.
type BlobStore interface {
	GenerateUploadURL(ctx context.Context) (UploadSlot, error)
	URLFor(ctx context.Context, blobID string) (string, error)
	// Delete removes the blob. Deleting an absent blob is success, so a
	// purge sweep can be re-run after a partial prior failure.
	Delete(ctx context.Context, blobID string) error
}
