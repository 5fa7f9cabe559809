package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"connect/config"
	"connect/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *blobStore {
	t.Helper()

	store, err := NewBlobStore(context.Background(), &config.StorageConfig{BucketURL: "mem://"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store.(*blobStore)
}

func TestBlobStore_SaveAndOpen(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".png"), "ref keeps the original extension")

	r, contentType, err := store.Open(ctx, ref)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, "image/png", contentType)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestBlobStore_SaveGeneratesUniqueRefs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	refA, err := store.Save(ctx, "avatar.png", "image/png", strings.NewReader("a"))
	require.NoError(t, err)
	refB, err := store.Save(ctx, "avatar.png", "image/png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, refA, refB)
}

func TestBlobStore_OpenMissingRef(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Open(context.Background(), "missing.png")
	assert.ErrorIs(t, err, service.ErrPictureNotFound)
}
