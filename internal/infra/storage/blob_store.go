// Package storage persists uploaded files in a blob bucket via the
// portable gocloud.dev blob API.
package storage

import (
	"context"
	"strings"

	"rituality/config"
	"rituality/internal/domain/lifecycle"
	"rituality/internal/domain/service"
	"rituality/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobStore implements the domain ObjectStore on a gocloud bucket.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the configured bucket and wires its shutdown into the app lifecycle.
func New(params Params) (service.ObjectStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
	}, nil
}

// Put writes the object under the caller-chosen key.
func (s *blobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrap(err, "failed to write object")
	}

	return nil
}

// URL builds the public URL for a stored key.
func (s *blobStore) URL(key string) string {
	return s.publicBaseURL + "/" + key
}
