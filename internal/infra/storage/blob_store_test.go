package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"fabquote/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobObjectStore_PutAttributesDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobObjectStore(bucket, newTestLogger())
	ctx := context.Background()

	key := "0190a6f4-7c1e-7a3b-9b7e-2f0c1d2e3f40/1700000000000-design.zip"
	require.NoError(t, store.Put(ctx, key, strings.NewReader("gerber"), "application/zip"))

	attrs, err := store.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(6), attrs.Size)
	assert.Equal(t, "application/zip", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Attributes(ctx, key)
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
	assert.ErrorIs(t, store.Delete(ctx, key), service.ErrObjectNotFound)
}

func TestBlobObjectStore_List(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobObjectStore(bucket, newTestLogger())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a/1-one.zip", strings.NewReader("1"), ""))
	require.NoError(t, store.Put(ctx, "a/2-two.zip", strings.NewReader("22"), ""))
	require.NoError(t, store.Put(ctx, "b/3-three.csv", strings.NewReader("333"), ""))

	objects, err := store.List(ctx, "a/")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "a/1-one.zip", objects[0].Key)
	assert.Equal(t, "a/2-two.zip", objects[1].Key)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBlobObjectStore_SignedURL(t *testing.T) {
	baseURL, err := url.Parse("http://localhost:8080/files")
	require.NoError(t, err)

	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{
		URLSigner: fileblob.NewURLSignerHMAC(baseURL, []byte("test-secret")),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobObjectStore(bucket, newTestLogger())
	ctx := context.Background()

	key := "owner/1700000000000-bom.csv"
	require.NoError(t, store.Put(ctx, key, strings.NewReader("ref,qty"), "text/csv"))

	signed, err := store.SignedURL(ctx, key, 60*time.Second)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, "http://localhost:8080/files"))
	assert.Contains(t, signed, "signature=")
}
