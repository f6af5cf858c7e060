// Package storage implements blob-backed binary storage for request images.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"fixflow/config"
	"fixflow/internal/domain/lifecycle"
	"fixflow/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // Register the file:// bucket scheme.
)

// blobImageStore implements service.ImageStore on top of a gocloud.dev bucket,
// so local disk and cloud object storage share one code path.
type blobImageStore struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the configured bucket and binds its lifetime to the app.
func New(params Params) (service.ImageStore, error) {
	if params.Config.Upload == nil || params.Config.Upload.BucketURL == "" {
		return nil, errors.New("upload bucket URL must be configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Upload.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{bucket: bucket}, nil
}

// Save streams one image into the bucket and returns its stable reference.
// Keys are date-partitioned so bucket listings stay navigable.
func (s *blobImageStore) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s%s",
		time.Now().UTC().Format("2006/01/02"),
		uuid.NewString(),
		path.Ext(filename),
	)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write image")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image write")
	}

	return key, nil
}

// Delete removes a stored image. Unknown references are not an error.
func (s *blobImageStore) Delete(ctx context.Context, ref string) error {
	exists, err := s.bucket.Exists(ctx, ref)
	if err != nil {
		return errors.Wrap(err, "failed to check image existence")
	}
	if !exists {
		return nil
	}

	return errors.Wrap(s.bucket.Delete(ctx, ref), "failed to delete image")
}
