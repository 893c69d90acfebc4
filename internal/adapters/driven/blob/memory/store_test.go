package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

func TestStore_SaveAndExists(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	exists, err := store.Exists(ctx, "EDINET/7203/ANNUAL_REPORT/doc.zip")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Save(ctx, "EDINET/7203/ANNUAL_REPORT/doc.zip", []byte("payload")))

	exists, err = store.Exists(ctx, "EDINET/7203/ANNUAL_REPORT/doc.zip")
	require.NoError(t, err)
	assert.True(t, exists)

	data, ok := store.Get("EDINET/7203/ANNUAL_REPORT/doc.zip")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), data)
}

func TestStore_RejectsAbsolutePath(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Exists(ctx, "/abs/x")
	assert.ErrorIs(t, err, domain.ErrAbsolutePath)

	err = store.Save(ctx, "/abs/x", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrAbsolutePath)
	assert.Zero(t, store.Len())
}

func TestStore_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Exists(ctx, "../x")
	assert.ErrorIs(t, err, domain.ErrPathTraversal)

	err = store.Save(ctx, "a/../../x", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrPathTraversal)
	assert.Zero(t, store.Len())
}

func TestStore_SaveCopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	payload := []byte("payload")
	require.NoError(t, store.Save(ctx, "a/b", payload))
	payload[0] = 'X'

	data, ok := store.Get("a/b")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), data)
}
