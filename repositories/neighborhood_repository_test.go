package repositories

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"litoral-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSeedsDefaultNeighborhoods(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewNeighborhoodRepository(store)

	neighborhoods := repo.FindAll()
	require.Len(t, neighborhoods, 3)
	assert.Equal(t, "Centro", neighborhoods[0].Name)
	assert.Equal(t, 5.00, neighborhoods[0].Fee)
	assert.Equal(t, "Vila Maritima", neighborhoods[2].Name)
	assert.Equal(t, 10.00, neighborhoods[2].Fee)
}

func TestNeighborhoodCreateAndDeletePersist(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	repo := NewNeighborhoodRepository(store)

	repo.Create(models.Neighborhood{ID: "4", Name: "Jardim Atlantico", Fee: 12.50})
	require.NoError(t, repo.Delete("2"))
	assert.Equal(t, 3, repo.Count())

	// The fee blob on disk reflects both mutations.
	data, err := os.ReadFile(filepath.Join(dir, "neighborhoods.json"))
	require.NoError(t, err)
	var persisted []models.Neighborhood
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 3)
	assert.Equal(t, "Jardim Atlantico", persisted[2].Name)

	// A restart reads the mutated blob instead of reseeding.
	reopened, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, NewNeighborhoodRepository(reopened).Count())
}

func TestNeighborhoodDeleteUnknown(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewNeighborhoodRepository(store)

	assert.ErrorIs(t, repo.Delete("missing"), ErrNotFound)
	assert.Equal(t, 3, repo.Count())
}
