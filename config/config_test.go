package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_FromFileWithDefaults(t *testing.T) {
	path := writeEnvFile(t, "DB_HOST=db.internal\nDB_NAME=lenglogs\nJWT_SECRET=s3cret\nJWT_ACCESS_EXPIRY=30m\n")

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "lenglogs_test")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("APP_ENV", "production")

	cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "lenglogs_test", cfg.DB.Name)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.True(t, cfg.App.IsProduction())
}

func TestLoadConfig_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	path := writeEnvFile(t, "DB_HOST=localhost\nDB_NAME=lenglogs\n")

	_, err := loadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestDBConfig_URL(t *testing.T) {
	cfg := DBConfig{Host: "h", Port: "5433", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "pgx5://u:p@h:5433/n?sslmode=disable", cfg.URL())
}
