package repositories

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"litoral-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestNewStoreSeedsRootAdmin(t *testing.T) {
	store, dir := newTestStore(t)
	repo := NewUserRepository(store)

	users := repo.FindAll()
	require.Len(t, users, 1)
	assert.Equal(t, models.RootAdminID, users[0].ID)
	assert.Equal(t, "admin", users[0].Username)
	assert.True(t, users[0].CanAccessAdmin)
	assert.True(t, users[0].CanAccessProduction)

	// The roster blob is written at seed time.
	_, err := os.Stat(filepath.Join(dir, "users.json"))
	assert.NoError(t, err)
}

func TestFindByUsernameTrimsAndIgnoresCase(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewUserRepository(store)

	for _, username := range []string{"admin", "ADMIN", "  Admin  "} {
		user, err := repo.FindByUsername(username)
		require.NoError(t, err, "username %q", username)
		assert.Equal(t, models.RootAdminID, user.ID)
	}

	_, err := repo.FindByUsername("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRefusesRootAdmin(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewUserRepository(store)

	err := repo.Delete(models.RootAdminID)
	assert.ErrorIs(t, err, ErrRootAdminProtected)

	// The roster is unchanged after the refused delete.
	users := repo.FindAll()
	require.Len(t, users, 1)
	assert.Equal(t, models.RootAdminID, users[0].ID)
}

func TestDeleteRemovesOrdinaryUser(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewUserRepository(store)

	repo.Create(models.User{ID: "u2", Username: "balcao", Name: "Balcao", CreatedAt: time.Now()})
	require.Len(t, repo.FindAll(), 2)

	require.NoError(t, repo.Delete("u2"))
	assert.Len(t, repo.FindAll(), 1)

	assert.ErrorIs(t, repo.Delete("u2"), ErrNotFound)
}

func TestRosterSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	repo := NewUserRepository(store)
	repo.Create(models.User{
		ID:                  "u2",
		Username:            "producao",
		Password:            "hash",
		Name:                "Producao",
		CanAccessProduction: true,
		CreatedAt:           time.Now(),
	})

	// A second store over the same directory reads the blob instead of
	// reseeding.
	reopened, err := NewStore(dir)
	require.NoError(t, err)
	users := NewUserRepository(reopened).FindAll()
	require.Len(t, users, 2)
	assert.Equal(t, "producao", users[1].Username)
	assert.Equal(t, "hash", users[1].Password)
	assert.True(t, users[1].CanAccessProduction)
	assert.False(t, users[1].CanAccessAdmin)
}
