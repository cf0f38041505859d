package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// clearEnvOverrides blanks the override variables so file values are
// visible regardless of the environment the tests run in.
func clearEnvOverrides(t *testing.T) {
	t.Helper()
	t.Setenv(EnvNotionToken, "")
	t.Setenv(EnvOpenAIAPIKey, "")
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".notion-assistant", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	nestedPath := filepath.Join(tmpDir, "nested", "deep", "path")

	store, err := NewConfigStore(nestedPath)

	require.NoError(t, err)
	require.NotNil(t, store)

	info, err := os.Stat(nestedPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Load_MissingFileYieldsDefaults(t *testing.T) {
	clearEnvOverrides(t)
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
	assert.Empty(t, settings.Notion.Token)
	assert.Equal(t, domain.DefaultChunkSize, settings.Index.ChunkSize)
}

func TestConfigStore_SaveAndLoad_RoundTrip(t *testing.T) {
	clearEnvOverrides(t)
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	in := domain.DefaultSettings()
	in.Notion.Token = "secret_abc"
	in.Notion.RootPageID = "root-123"
	in.Embedding.APIKey = "sk-test"
	in.Index.ChunkSize = 500
	in.Index.ChunkOverlap = 50

	require.NoError(t, store.Save(in))

	// A fresh store over the same directory reads the same values.
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	out, err := store2.Load()
	require.NoError(t, err)

	assert.Equal(t, "secret_abc", out.Notion.Token)
	assert.Equal(t, "root-123", out.Notion.RootPageID)
	assert.Equal(t, "sk-test", out.Embedding.APIKey)
	assert.Equal(t, 500, out.Index.ChunkSize)
	assert.Equal(t, 50, out.Index.ChunkOverlap)
}

func TestConfigStore_Load_EnvOverridesFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	in := domain.DefaultSettings()
	in.Notion.Token = "file-token"
	in.Embedding.APIKey = "file-key"
	require.NoError(t, store.Save(in))

	t.Setenv(EnvNotionToken, "env-token")
	t.Setenv(EnvOpenAIAPIKey, "env-key")

	out, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "env-token", out.Notion.Token)
	assert.Equal(t, "env-key", out.Embedding.APIKey)
}

func TestConfigStore_Load_EmptyEnvKeepsFileValues(t *testing.T) {
	clearEnvOverrides(t)
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	in := domain.DefaultSettings()
	in.Notion.Token = "file-token"
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "file-token", out.Notion.Token)
}

func TestConfigStore_Load_NormalizesPartialFile(t *testing.T) {
	clearEnvOverrides(t)
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// Only one section present, the rest must come from defaults.
	partial := []byte("[notion]\ntoken = \"tok\"\n")
	require.NoError(t, os.WriteFile(store.Path(), partial, 0600))

	out, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "tok", out.Notion.Token)
	assert.Equal(t, domain.DefaultEmbeddingModel, out.Embedding.Model)
	assert.Equal(t, domain.DefaultChunkSize, out.Index.ChunkSize)
	assert.Equal(t, domain.DefaultEmbedWorkers, out.Index.EmbedWorkers)
}

func TestConfigStore_Load_CorruptTOML(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	corrupted := []byte("this is not valid TOML {{{[[")
	require.NoError(t, os.WriteFile(store.Path(), corrupted, 0600))

	_, err = store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.toml")
}

func TestConfigStore_Save_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.DefaultSettings()))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Save_Overwrites(t *testing.T) {
	clearEnvOverrides(t)
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	first := domain.DefaultSettings()
	first.Notion.RootPageID = "original"
	require.NoError(t, store.Save(first))

	second := domain.DefaultSettings()
	second.Notion.RootPageID = "updated"
	require.NoError(t, store.Save(second))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "updated", out.Notion.RootPageID)
}

func TestConfigStore_Load_EmptyFile(t *testing.T) {
	clearEnvOverrides(t)
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}
