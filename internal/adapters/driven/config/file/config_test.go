package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("FINO_EDINET_API_KEY", "")
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.Storage.Dir)
	assert.Equal(t, filepath.Join(dir, "history.db"), cfg.Collect.HistoryPath)
	assert.Empty(t, cfg.EDINET.APIKey)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[edinet]
api_key = "sub-key-1234"
requests_per_second = 1.5

[storage]
backend = "s3"
endpoint = "localhost:9000"
bucket = "disclosures"
prefix = "raw"

[collect]
workers = 8
list_workers = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sub-key-1234", cfg.EDINET.APIKey)
	assert.Equal(t, 1.5, cfg.EDINET.RequestsPerSecond)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "disclosures", cfg.Storage.Bucket)
	assert.Equal(t, 8, cfg.Collect.Workers)
	assert.Equal(t, 2, cfg.Collect.ListWorkers)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[edinet\napi_key = ")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "ftp"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestLoad_S3RequiresBucket(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "s3"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	path := writeConfig(t, `
[edinet]
api_key = "from-file"
`)
	t.Setenv("FINO_EDINET_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.EDINET.APIKey)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := &Config{}
	cfg.EDINET.APIKey = "sub-key"
	cfg.Storage.Backend = "local"
	cfg.Storage.Dir = "/tmp/fino-data"
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sub-key", loaded.EDINET.APIKey)
	assert.Equal(t, "/tmp/fino-data", loaded.Storage.Dir)
}
