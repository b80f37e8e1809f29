// Package storage implements the object store on gocloud.dev/blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"fabquote/config"
	"fabquote/internal/domain/service"
	"fabquote/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

type blobObjectStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for the object store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStore opens the configured bucket
func NewObjectStore(params Params) (service.ObjectStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing object store bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobObjectStore(bucket, params.Logger), nil
}

// NewBlobObjectStore wraps an already opened bucket
func NewBlobObjectStore(bucket *blob.Bucket, logger *slog.Logger) service.ObjectStore {
	return &blobObjectStore{
		bucket: bucket,
		logger: logger,
	}
}

// Put writes the object under the key
func (s *blobObjectStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = w.Close()

		return errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed to commit %s", key)
	}

	return nil
}

// Attributes returns the object metadata
func (s *blobObjectStore) Attributes(ctx context.Context, key string) (*service.ObjectAttributes, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to read attributes of %s", key)
	}

	return &service.ObjectAttributes{
		Key:         key,
		Size:        attrs.Size,
		ContentType: attrs.ContentType,
		ModTime:     attrs.ModTime,
	}, nil
}

// SignedURL returns a time-limited download link
func (s *blobObjectStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: ttl,
		Method: http.MethodGet,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s", key)
	}

	return url, nil
}

// Delete removes the object
func (s *blobObjectStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrObjectNotFound
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	s.logger.Debug("Object deleted", slog.String("key", key))

	return nil
}

// List returns the objects under a prefix
func (s *blobObjectStore) List(ctx context.Context, prefix string) ([]service.ObjectAttributes, error) {
	objects := make([]service.ObjectAttributes, 0)

	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %s", prefix)
		}
		if obj.IsDir {
			continue
		}

		objects = append(objects, service.ObjectAttributes{
			Key:     obj.Key,
			Size:    obj.Size,
			ModTime: obj.ModTime,
		})
	}

	return objects, nil
}

// Module provides the object store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStore),
)
