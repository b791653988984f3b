package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/storage"
)

func TestCandidateStore_PutAndGet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewCandidateStore(pool)
	ctx := context.Background()

	c := &model.Candidate{
		ID:              "cand-1",
		Name:            "Ada",
		Headline:        "backend engineer",
		Location:        "london",
		ExperienceYears: 7,
		AvgTenureYears:  2.5,
		Skills:          []string{"go", "kubernetes"},
		Industries:      []string{"fintech"},
		CultureTraits:   []string{"startup"},
		Identities: map[model.Provider]string{
			model.ProviderCodeHost: "ada-dev",
			model.ProviderQA:       "ada_answers",
		},
	}

	require.NoError(t, store.Put(ctx, c))

	got, err := store.Get(ctx, "cand-1")
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Skills, got.Skills)
	assert.Equal(t, "ada-dev", got.Identities[model.ProviderCodeHost])
	assert.InDelta(t, 7.0, got.ExperienceYears, 1e-9)
}

func TestCandidateStore_DuplicateKey(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewCandidateStore(pool)
	ctx := context.Background()

	c := &model.Candidate{ID: "cand-1", Name: "Ada"}
	require.NoError(t, store.Put(ctx, c))

	err := store.Put(ctx, c)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestCandidateStore_ListAndDelete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewCandidateStore(pool)
	ctx := context.Background()

	for _, id := range []string{"cand-b", "cand-a", "cand-c"} {
		require.NoError(t, store.Put(ctx, &model.Candidate{ID: id, Name: id}))
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "cand-a", all[0].ID)
	assert.Equal(t, "cand-c", all[2].ID)

	require.NoError(t, store.Delete(ctx, "cand-b"))
	_, err = store.Get(ctx, "cand-b")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "cand-b"), storage.ErrNotFound)
}

func TestCandidateStore_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewCandidateStore(pool)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
