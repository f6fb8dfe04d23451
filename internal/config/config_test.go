package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeINI(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeINI(t, `[postgresql]
host = db.example.com
port = 5433
user = uploader
password = secret
dbname = modules
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "uploader", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "modules", cfg.Database.Name)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 300, cfg.Database.ConnMaxLifetimeSec)
	assert.False(t, cfg.StorageEnabled)
}

func TestLoadDefaults(t *testing.T) {
	path := writeINI(t, `[postgresql]
host = localhost
user = u
dbname = d
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadMissingSection(t *testing.T) {
	path := writeINI(t, `[mysql]
host = localhost
`)

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `section "postgresql" not found`)
	assert.Nil(t, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadMinIOSection(t *testing.T) {
	path := writeINI(t, `[postgresql]
host = localhost
user = u
dbname = d

[minio]
endpoint = minio.local:9000
access_key = ak
secret_key = sk
bucket = modules
use_ssl = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.StorageEnabled)
	assert.Equal(t, "minio.local:9000", cfg.MinIO.Endpoint)
	assert.Equal(t, "ak", cfg.MinIO.AccessKey)
	assert.Equal(t, "sk", cfg.MinIO.SecretKey)
	assert.Equal(t, "modules", cfg.MinIO.Bucket)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeINI(t, `[postgresql]
host = from-file
user = u
dbname = d
`)

	t.Setenv("DB_HOST", "from-env")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
