package storage

import (
	"context"
	"fmt"
	"time"

	appcfg "github.com/slicycode/file-drive/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3BlobStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	expire  time.Duration
}

func NewS3BlobStore(ctx context.Context, cfg *appcfg.BlobConfig) (*S3BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load blob storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3BlobStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		expire:  time.Duration(cfg.PresignExpireMinutes) * time.Minute,
	}, nil
}

// newBlobID returns a date-partitioned storage key.
func newBlobID() string {
	d := time.Now()
	return fmt.Sprintf("files/%d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *S3BlobStore) GenerateUploadURL(ctx context.Context) (UploadSlot, error) {
	key := newBlobID()

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.expire))
	if err != nil {
		return UploadSlot{}, fmt.Errorf("presign upload url: %w", err)
	}

	return UploadSlot{BlobID: key, URL: req.URL}, nil
}

func (s *S3BlobStore) URLFor(ctx context.Context, blobID string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &blobID,
	}, s3.WithPresignExpires(s.expire))
	if err != nil {
		return "", fmt.Errorf("presign download url: %w", err)
	}

	return req.URL, nil
}

func (s *S3BlobStore) Delete(ctx context.Context, blobID string) error {
	// S3 DeleteObject on an absent key succeeds, which is the idempotency
	// the sweeper relies on.
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &blobID,
	})
	if err != nil {
		return fmt.Errorf("delete blob %s: %w", blobID, err)
	}
	return nil
}
