package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ogurasousui/operator-registry/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/operator-registry/internal/core/catalog"
	"github.com/ogurasousui/operator-registry/internal/core/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperator(id string, code int, nationalID string) *operator.Operator {
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return &operator.Operator{
		ID:         id,
		Code:       code,
		NationalID: nationalID,
		FirstName:  "Ana",
		LastName:   "Ruiz",
		RegionID:   1,
		StatusID:   catalog.StatusPendingCreate,
		CreatedBy:  "admin",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestOperatorStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "operators.db")

	store, err := sqlite.Open(ctx, path)
	require.NoError(t, err)

	_, err = store.Create(ctx, newOperator("a", 0, "100"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newOperator("b", 1, "200"))
	require.NoError(t, err)
	_, err = store.SoftDelete(ctx, "b", "editor", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	found, err := reopened.FindByID(ctx, "a", false)
	require.NoError(t, err)
	assert.Equal(t, "100", found.NationalID)

	trashed, err := reopened.FindByID(ctx, "b", true)
	require.NoError(t, err)
	assert.True(t, trashed.Trashed())
	assert.Equal(t, "editor", trashed.DeletedBy)

	codes, err := reopened.CodesInUse(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, codes)
}

func TestOperatorStore_FailedMutationNotPersisted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "operators.db")

	store, err := sqlite.Open(ctx, path)
	require.NoError(t, err)

	_, err = store.Create(ctx, newOperator("a", 0, "100"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newOperator("b", 0, "200"))
	require.ErrorIs(t, err, operator.ErrCodeConflict)

	count, err := store.PurgeTrashed(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	_, err = reopened.FindByID(ctx, "b", true)
	require.ErrorIs(t, err, operator.ErrOperatorNotFound)
}
