package session

import (
	"context"
	"testing"

	"labline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateStartsAtInitialStage(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess, err := store.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "U1", sess.UserID)
	assert.Equal(t, models.StageAskName, sess.Stage)
	assert.True(t, store.Has("U1"))
}

func TestSaveKeepsMutations(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess, err := store.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	sess.Stage = models.StageGetName
	sess.Name = "Asha"
	require.NoError(t, store.Save(ctx, sess))

	again, err := store.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, models.StageGetName, again.Stage)
	assert.Equal(t, "Asha", again.Name)
}

func TestDeleteTreatsSessionAsAbsent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess, err := store.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	sess.Stage = models.StageConfirmBooking
	require.NoError(t, store.Save(ctx, sess))

	require.NoError(t, store.Delete(ctx, "U1"))
	// Idempotent.
	require.NoError(t, store.Delete(ctx, "U1"))
	assert.False(t, store.Has("U1"))

	fresh, err := store.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, models.StageAskName, fresh.Stage)
	assert.Empty(t, fresh.Name)
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, err := store.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	b, err := store.GetOrCreate(ctx, "U2")
	require.NoError(t, err)

	a.Name = "Asha"
	a.Stage = models.StageSelectService
	require.NoError(t, store.Save(ctx, a))

	assert.Empty(t, b.Name)
	assert.Equal(t, models.StageAskName, b.Stage)

	require.NoError(t, store.Delete(ctx, "U1"))
	assert.True(t, store.Has("U2"))
}
