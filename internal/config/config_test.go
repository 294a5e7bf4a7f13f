package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/users")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "postgres://localhost/users", cfg.Database.URL)
	require.True(t, cfg.Database.AutoMigrate)
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, "10M", cfg.HTTP.BodyLimit)
	require.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	require.Equal(t, 4, cfg.Import.ConflictCheckConcurrency)
	require.Equal(t, "/metrics", cfg.Prometheus.Path)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Chdir(t.TempDir())

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/users")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://admin.example.com")
	t.Setenv("IMPORT_CONFLICT_CHECK_CONCURRENCY", "8")
	t.Setenv("LOG_FORMAT", "json")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"http://localhost:3000", "https://admin.example.com"}, cfg.HTTP.CORSAllowedOrigins)
	require.Equal(t, 8, cfg.Import.ConflictCheckConcurrency)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsInvalidConcurrency(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/users")
	t.Setenv("IMPORT_CONFLICT_CHECK_CONCURRENCY", "0")
	t.Chdir(t.TempDir())

	_, err := Load()
	require.Error(t, err)
}

func TestLoadEnvReadsExistingFilesOnly(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env.local"), []byte("USER_REGISTRY_TEST_ENV=ok\n"), 0o644))
	t.Setenv("USER_REGISTRY_TEST_ENV", "")
	os.Unsetenv("USER_REGISTRY_TEST_ENV")

	n, err := LoadEnv([]string{filepath.Join(tmp, ".env"), filepath.Join(tmp, ".env.local")})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "ok", os.Getenv("USER_REGISTRY_TEST_ENV"))
}
