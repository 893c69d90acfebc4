package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

func testRunStore(t *testing.T) *RunStore {
	t.Helper()
	store, err := NewRunStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRun(id string, startedAt time.Time) domain.CollectionRun {
	return domain.CollectionRun{
		ID:         id,
		Operation:  domain.OperationCollect,
		Source:     domain.SourceEDINET,
		Criteria:   "2024-03 XBRL",
		Available:  10,
		Stored:     4,
		Collected:  5,
		Failed:     1,
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(30 * time.Second),
	}
}

func TestRunStore_RecordAndList(t *testing.T) {
	store := testRunStore(t)
	ctx := context.Background()

	started := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, testRun("run-1", started)))

	runs, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, "run-1", runs[0].ID)
	assert.Equal(t, domain.OperationCollect, runs[0].Operation)
	assert.Equal(t, domain.SourceEDINET, runs[0].Source)
	assert.Equal(t, "2024-03 XBRL", runs[0].Criteria)
	assert.Equal(t, 10, runs[0].Available)
	assert.Equal(t, 5, runs[0].Collected)
	assert.Equal(t, 1, runs[0].Failed)
	assert.True(t, started.Equal(runs[0].StartedAt))
}

func TestRunStore_ListNewestFirst(t *testing.T) {
	store := testRunStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, testRun("run-old", base)))
	require.NoError(t, store.Record(ctx, testRun("run-new", base.Add(time.Hour))))

	runs, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-new", runs[0].ID)
	assert.Equal(t, "run-old", runs[1].ID)
}

func TestRunStore_ListRespectsLimit(t *testing.T) {
	store := testRunStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Record(ctx, testRun(id, base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRunStore_RecordEmptyID(t *testing.T) {
	store := testRunStore(t)

	err := store.Record(context.Background(), domain.CollectionRun{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunStore_ListInvalidLimit(t *testing.T) {
	store := testRunStore(t)

	_, err := store.List(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := NewRunStore(path)
	require.NoError(t, err)
	started := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, testRun("run-1", started)))
	require.NoError(t, store.Close())

	reopened, err := NewRunStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
}
