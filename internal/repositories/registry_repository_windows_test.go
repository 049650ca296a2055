//go:build windows

package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"gpumanager/internal/models"
)

// newTestRegistryRepository points the repository at a fresh subkey of
// HKEY_CURRENT_USER\Software that is removed when the test ends. The key
// itself is not created.
func newTestRegistryRepository(t *testing.T) *registryRepository {
	t.Helper()
	path := `Software\gpumanager-test-` + uuid.NewString()
	t.Cleanup(func() {
		if err := registry.DeleteKey(registry.CURRENT_USER, path); err != nil && !errors.Is(err, registry.ErrNotExist) {
			t.Errorf("remove %s: %v", path, err)
		}
	})
	return &registryRepository{root: registry.CURRENT_USER, path: path}
}

func openTestKey(t *testing.T, repo *registryRepository) registry.Key {
	t.Helper()
	k, _, err := registry.CreateKey(repo.root, repo.path, registry.SET_VALUE|registry.QUERY_VALUE)
	require.NoError(t, err)
	t.Cleanup(func() { _ = k.Close() })
	return k
}

func TestRegistryRepository_ListMissingNamespace(t *testing.T) {
	repo := newTestRegistryRepository(t)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrNamespaceNotFound)
}

func TestRegistryRepository_SetCreatesNamespace(t *testing.T) {
	repo := newTestRegistryRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, `C:\a.exe`, models.PreferenceAuto))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RawEntry{{Path: `C:\a.exe`, Value: "GpuPreference=0;"}}, got)

	k, err := registry.OpenKey(repo.root, repo.path, registry.QUERY_VALUE)
	require.NoError(t, err)
	defer k.Close()
	value, valType, err := k.GetStringValue(`C:\a.exe`)
	require.NoError(t, err)
	assert.Equal(t, "GpuPreference=0;", value)
	assert.Equal(t, uint32(registry.SZ), valType)
}

func TestRegistryRepository_Overwrite(t *testing.T) {
	repo := newTestRegistryRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, `C:\b.exe`, models.PreferenceIntegrated))
	require.NoError(t, repo.Set(ctx, `C:\a.exe`, models.PreferenceAuto))
	require.NoError(t, repo.Set(ctx, `C:\b.exe`, models.PreferenceDiscrete))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	// Enumeration order is owned by the registry; only the contents are fixed.
	assert.ElementsMatch(t, []models.RawEntry{
		{Path: `C:\b.exe`, Value: "GpuPreference=2;"},
		{Path: `C:\a.exe`, Value: "GpuPreference=0;"},
	}, got)
}

func TestRegistryRepository_SetRejectsInvalidPreference(t *testing.T) {
	repo := newTestRegistryRepository(t)

	err := repo.Set(context.Background(), `C:\a.exe`, models.Preference(4))
	assert.Error(t, err)

	_, err = repo.List(context.Background())
	assert.ErrorIs(t, err, ErrNamespaceNotFound, "rejected write must not create the key")
}

func TestRegistryRepository_Delete(t *testing.T) {
	repo := newTestRegistryRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, `C:\a.exe`, models.PreferenceAuto))
	require.NoError(t, repo.Set(ctx, `C:\b.exe`, models.PreferenceDiscrete))

	require.NoError(t, repo.Delete(ctx, `C:\a.exe`))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RawEntry{{Path: `C:\b.exe`, Value: "GpuPreference=2;"}}, got)
}

func TestRegistryRepository_DeleteMissing(t *testing.T) {
	repo := newTestRegistryRepository(t)
	ctx := context.Background()

	err := repo.Delete(ctx, `C:\a.exe`)
	assert.ErrorIs(t, err, ErrEntryNotFound, "absent namespace")

	require.NoError(t, repo.Set(ctx, `C:\b.exe`, models.PreferenceAuto))
	err = repo.Delete(ctx, `C:\a.exe`)
	assert.ErrorIs(t, err, ErrEntryNotFound, "absent value")
}

func TestRegistryRepository_ListSkipsNonStringValues(t *testing.T) {
	repo := newTestRegistryRepository(t)
	k := openTestKey(t, repo)

	require.NoError(t, k.SetStringValue(`C:\a.exe`, "GpuPreference=1;"))
	require.NoError(t, k.SetDWordValue(`C:\dword.exe`, 2))
	require.NoError(t, k.SetBinaryValue(`C:\binary.exe`, []byte("GpuPreference=2;")))
	require.NoError(t, k.SetStringValue(`C:\b.exe`, "not-a-pref"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.RawEntry{
		{Path: `C:\a.exe`, Value: "GpuPreference=1;"},
		{Path: `C:\b.exe`, Value: "not-a-pref"},
	}, got)
}

func TestCollectValues_SkipsUnreadableValues(t *testing.T) {
	values := map[string]error{
		`C:\a.exe`:     nil,
		`C:\dword.exe`: registry.ErrUnexpectedType,
		`C:\gone.exe`:  windows.ERROR_FILE_NOT_FOUND,
		`C:\b.exe`:     nil,
	}
	read := func(name string) (string, error) {
		if err := values[name]; err != nil {
			return "", err
		}
		return "GpuPreference=0;", nil
	}

	got := collectValues([]string{`C:\a.exe`, `C:\dword.exe`, `C:\gone.exe`, `C:\b.exe`}, read)
	assert.Equal(t, []models.RawEntry{
		{Path: `C:\a.exe`, Value: "GpuPreference=0;"},
		{Path: `C:\b.exe`, Value: "GpuPreference=0;"},
	}, got)
}

func TestClassifyRegistry(t *testing.T) {
	denied := classifyRegistry("set C:\\a.exe", windows.ERROR_ACCESS_DENIED)
	assert.ErrorIs(t, denied, ErrAccessDenied)
	assert.ErrorIs(t, denied, windows.ERROR_ACCESS_DENIED)
	assert.NotErrorIs(t, denied, ErrIO)

	other := classifyRegistry("set C:\\a.exe", windows.ERROR_FILE_NOT_FOUND)
	assert.ErrorIs(t, other, ErrIO)
	assert.NotErrorIs(t, other, ErrAccessDenied)
}

func TestClassifyRegistry_ReadOnlyHandle(t *testing.T) {
	repo := newTestRegistryRepository(t)
	openTestKey(t, repo)

	ro, err := registry.OpenKey(repo.root, repo.path, registry.QUERY_VALUE)
	require.NoError(t, err)
	defer ro.Close()

	err = classifyRegistry("set C:\\a.exe", ro.SetStringValue(`C:\a.exe`, "GpuPreference=0;"))
	assert.ErrorIs(t, err, ErrAccessDenied)
}
