package kv

import (
	"context"
	"testing"

	"krvt/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveThenLoad(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	saved := []model.HotspotModel{
		{ID: "Cau1", Name: "Cầu số 1", Pollution: 42, Note: "Rác nổi sau mưa"},
		{ID: "Cong3", Name: "Cống số 3", Pollution: 15},
	}
	require.NoError(t, store.Save(ctx, "krvt_hotspots", saved))

	var loaded []model.HotspotModel
	found, err := store.Load(ctx, "krvt_hotspots", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, loaded)
}

func TestMemoryStore_LoadMissingKey(t *testing.T) {
	store := NewMemory()

	var dest []model.RewardModel
	found, err := store.Load(context.Background(), "krvt_rewards", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)
}

func TestMemoryStore_SaveReplacesPreviousSnapshot(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "krvt_people", []model.ParticipantModel{{ID: "sv01", Name: "A", Points: 40}}))
	require.NoError(t, store.Save(ctx, "krvt_people", []model.ParticipantModel{{ID: "sv02", Name: "B", Points: 15}}))

	var loaded []model.ParticipantModel
	found, err := store.Load(ctx, "krvt_people", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, loaded, 1)
	assert.Equal(t, "sv02", loaded[0].ID)
}

func TestMemoryStore_CorruptSnapshotIsAnError(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	// A snapshot of the wrong shape fails to decode into the destination.
	require.NoError(t, store.Save(ctx, "krvt_alerts", "not-an-alert-state"))

	var dest model.AlertStateModel
	_, err := store.Load(ctx, "krvt_alerts", &dest)
	assert.Error(t, err)
}
