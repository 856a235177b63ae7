package file

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/0xalexb/ipa-config/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string, content []byte) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(configPath, content, 0o600)
	require.NoError(t, err)

	return configPath
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
[global]
server = ipa.example.test
domain = example.test
`)

	configPath := writeConfig(t, "default.conf", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFetcher_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/default.conf")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, config.ErrFileOpen)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "open file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_Fetch_PermissionDenied(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file modes are not enforced for this user")
	}

	configPath := writeConfig(t, "default.conf", []byte("[global]\n"))

	err := os.Chmod(configPath, 0o000)
	require.NoError(t, err)

	fetcher, err := NewFetcher(configPath)()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, config.ErrFileOpen)
	require.ErrorIs(t, err, os.ErrPermission)
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "empty.conf", []byte{})

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_Fetch_LargeFile(t *testing.T) {
	t.Parallel()

	content := make([]byte, 1024*1024)
	for i := range content {
		content[i] = byte('a' + (i % 26))
	}

	configPath := writeConfig(t, "large.conf", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestNewFetcher_ReturnsValidConstructor(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "default.conf", []byte("[global]\nrealm = EXAMPLE.TEST\n"))

	constructor := NewFetcher(configPath)

	assert.NotNil(t, constructor)

	fetcher, err := constructor()
	require.NoError(t, err)
	assert.NotNil(t, fetcher)
	assert.Equal(t, configPath, fetcher.filepath)
	assert.Equal(t, configPath, fetcher.Path())
}

func TestNewFetcher_CleansPath(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "default.conf", []byte("[global]\n"))
	dirtyPath := filepath.Dir(configPath) + "/./sub/../default.conf"

	fetcher, err := NewFetcher(dirtyPath)()
	require.NoError(t, err)
	assert.Equal(t, configPath, fetcher.Path())
}

func TestFetcher_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	fetcher, err := NewFetcher(tmpDir)()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	require.ErrorIs(t, err, config.ErrFileOpen)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	originalContent := []byte("[global]\nserver = one.example.test\n")
	modifiedContent := []byte("[global]\nserver = two.example.test\n")

	configPath := writeConfig(t, "default.conf", originalContent)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	err = os.WriteFile(configPath, modifiedContent, 0o600)
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, originalContent, data, "Fetch should return cached data, not current file content")
}

func TestFetcher_Fetch_FileRemovedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	content := []byte("[global]\ndomain = example.test\n")
	configPath := writeConfig(t, "default.conf", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	require.NoError(t, os.Remove(configPath))

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	content := []byte("[global]\n")
	configPath := writeConfig(t, "default.conf", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	data1[0] = 'X'

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, data2, "Fetch should return unmodified cached data")
}
