package blob_test

import (
	"context"
	"testing"

	"courier/internal/adapters/out/blob"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBlobStore_PutAndGet(t *testing.T) {
	store, err := blob.NewFileBlobStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	ref, err := store.Put(ctx, "pod/abc/signature", []byte("signature bytes"))
	require.NoError(t, err)
	assert.Equal(t, "pod/abc/signature", ref)

	data, err := store.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("signature bytes"), data)
}

func TestFileBlobStore_Get_UnknownRef(t *testing.T) {
	store, err := blob.NewFileBlobStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "pod/missing/signature")
	require.Error(t, err)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestFileBlobStore_RejectsEscapingReferences(t *testing.T) {
	store, err := blob.NewFileBlobStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = store.Put(ctx, "../outside", []byte("x"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = store.Get(ctx, "/etc/passwd")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = store.Put(ctx, "", []byte("x"))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
