//go:build !windows

package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"gpumanager/internal/database"
	"gpumanager/internal/models"
)

func newTestRepository(t *testing.T) GpuPreferenceRepository {
	t.Helper()
	db, err := database.Init(database.Config{
		Path:     filepath.Join(t.TempDir(), "store.db"),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return NewSqliteRepository(db)
}

func TestSqliteRepository_ListMissingNamespace(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrNamespaceNotFound)
}

func TestSqliteRepository_SetCreatesNamespace(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, `C:\a.exe`, models.PreferenceAuto))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RawEntry{{Path: `C:\a.exe`, Value: "GpuPreference=0;"}}, got)
}

func TestSqliteRepository_OverwriteKeepsOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, `C:\b.exe`, models.PreferenceIntegrated))
	require.NoError(t, repo.Set(ctx, `C:\a.exe`, models.PreferenceAuto))
	require.NoError(t, repo.Set(ctx, `C:\b.exe`, models.PreferenceDiscrete))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RawEntry{
		{Path: `C:\b.exe`, Value: "GpuPreference=2;"},
		{Path: `C:\a.exe`, Value: "GpuPreference=0;"},
	}, got)
}

func TestSqliteRepository_SetRejectsInvalidPreference(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Set(context.Background(), `C:\a.exe`, models.Preference(4))
	assert.Error(t, err)
}

func TestSqliteRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, `C:\a.exe`, models.PreferenceAuto))
	require.NoError(t, repo.Set(ctx, `C:\b.exe`, models.PreferenceDiscrete))

	require.NoError(t, repo.Delete(ctx, `C:\a.exe`))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RawEntry{{Path: `C:\b.exe`, Value: "GpuPreference=2;"}}, got)
}

func TestSqliteRepository_DeleteMissing(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.Delete(ctx, `C:\a.exe`)
	assert.ErrorIs(t, err, ErrEntryNotFound, "absent namespace")

	require.NoError(t, repo.Set(ctx, `C:\b.exe`, models.PreferenceAuto))
	err = repo.Delete(ctx, `C:\a.exe`)
	assert.ErrorIs(t, err, ErrEntryNotFound, "absent value")
}
