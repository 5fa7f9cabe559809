// Package storage persists uploaded profile pictures in a blob bucket.
// The bucket is addressed by URL, so local disk (file://), GCS (gs://) and
// the in-memory test bucket (mem://) all work without code changes.
package storage

import (
	"context"
	"io"
	"path"

	"connect/config"
	"connect/internal/domain/lifecycle"
	"connect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the bucket named by the storage config.
func NewBlobStore(ctx context.Context, cfg *config.StorageConfig) (service.PictureStore, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

// StoreParams holds dependencies for the PictureStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
}

// NewPictureStore is the Fx provider for the PictureStore. Without storage
// configuration it returns nil and picture uploads are rejected upstream.
func NewPictureStore(params StoreParams) (service.PictureStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, nil
	}

	store, err := NewBlobStore(params.Ctx, cfg)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Save writes the picture under a fresh key, keeping the original file
// extension, and returns that key as the stored reference.
func (s *blobStore) Save(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	key := uuid.NewString() + path.Ext(name)

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write picture")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish picture write")
	}

	return key, nil
}

// Open reads a previously stored picture and reports its content type.
func (s *blobStore) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, ref, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrPictureNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open picture %s", ref)
	}

	return r, r.ContentType(), nil
}

// Close releases the underlying bucket.
func (s *blobStore) Close() error {
	return errors.Wrap(s.bucket.Close(), "failed to close bucket")
}
