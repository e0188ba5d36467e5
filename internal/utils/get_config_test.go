package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func resetConfig(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { config = defaults })
}

func TestLoadConfigFrom(t *testing.T) {
	resetConfig(t)
	path := writeConfig(t, `
DB_HOST: db.internal
DB_USER: chef
DB_NAME: recipes
BCRYPT_COST: "12"
AWS_S3_BUCKET: avatars
`)

	require.NoError(t, LoadConfigFrom(path))
	require.Equal(t, "db.internal", GetConfig("DB_HOST"))
	require.Equal(t, "chef", GetConfig("DB_USER"))
	require.Equal(t, "recipes", GetConfig("DB_NAME"))
	require.Equal(t, "12", GetConfig("BCRYPT_COST"))
	require.Equal(t, "avatars", GetConfig("AWS_S3_BUCKET"))

	// unset keys fall back to defaults
	require.Equal(t, "8080", GetConfig("APP_PORT"))
	require.Equal(t, "5432", GetConfig("DB_PORT"))
	require.Equal(t, "./logs/app.log", GetConfig("LOG_FILE"))
	require.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestGetConfig_EnvOverridesFile(t *testing.T) {
	resetConfig(t)
	path := writeConfig(t, "DB_HOST: db.internal\nAPP_PORT: \"9000\"\n")
	require.NoError(t, LoadConfigFrom(path))

	t.Setenv("DB_HOST", "localhost")
	require.Equal(t, "localhost", GetConfig("DB_HOST"))
	require.Equal(t, "9000", GetConfig("APP_PORT"))
}

func TestLoadConfigFrom_Errors(t *testing.T) {
	resetConfig(t)

	err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := writeConfig(t, "DB_HOST: [unterminated")
	require.Error(t, LoadConfigFrom(bad))
	require.Equal(t, "8080", GetConfig("APP_PORT"))
}

func TestInitValidator(t *testing.T) {
	InitValidator()
	require.NotNil(t, Validate)

	type page struct {
		Limit int `validate:"min=1,max=100"`
	}
	require.NoError(t, Validate.Struct(page{Limit: 10}))
	require.Error(t, Validate.Struct(page{Limit: 0}))
}
