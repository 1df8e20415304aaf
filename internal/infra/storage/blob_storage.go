// Package storage implements media storage on top of gocloud.dev blob
// buckets, so the same code serves local disk in development and S3 or GCS
// in production via the bucket URL alone.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"clipstream/config"
	"clipstream/internal/domain/lifecycle"
	"clipstream/internal/domain/service"
	"clipstream/internal/errors"
	"clipstream/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers usable via URL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements service.MediaStorage using a gocloud.dev bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the media storage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a MediaStorage.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL must be provided")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("media public base URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// NewWithBucket wraps an already opened bucket. Used by tests.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.MediaStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload stores the file contents under a random key beneath prefix and
// returns the public URL of the stored object.
func (s *blobStorage) Upload(ctx context.Context, prefix, filename, contentType string, contents io.Reader) (string, error) {
	key := s.objectKey(prefix, filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	written, err := io.Copy(writer, contents)
	if err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write media object")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize media object")
	}

	url := s.publicBaseURL + "/" + key
	s.logger.Debug("media object stored",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.String("size", util.FormatBytes(written)),
	)

	return url, nil
}

// Delete removes a previously stored object by its public URL.
// Deleting an unknown URL is a no-op.
func (s *blobStorage) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !ok || key == "" {
		return nil
	}

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrap(err, "failed to check media object")
	}
	if !exists {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete media object")
	}

	return nil
}

// objectKey builds a collision-free key that keeps the original extension
// so content type sniffing on CDNs keeps working.
func (s *blobStorage) objectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("%s/%s/%s%s",
		strings.Trim(prefix, "/"),
		time.Now().UTC().Format("2006/01"),
		uuid.NewString(),
		ext,
	)
}
