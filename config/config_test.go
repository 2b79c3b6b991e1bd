package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		configPathEnv, "PORT", "LOG_LEVEL", "LOG_FORMAT", "STORE_DRIVER", "REDIS_URL", "REDIS_ADDR",
		"REDIS_PASSWORD", "REDIS_DB", "DATABASE_DSN", "ALLOWED_ORIGINS", "SITE_BASE_URL",
		"OPENAI_API_KEY", "OPENAI_MODEL", "GOOGLE_SERVICE_ACCOUNT_CREDENTIALS", "SIGNUP_SHEET_ID",
		"SIGNUP_SHEET_RANGE", "MAX_PAGE_SIZE", "SIGNUP_BASE_COUNT", "SIGNUP_CAPACITY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, StoreDriverRedis, cfg.Store.Driver)
	assert.Equal(t, 100, cfg.Articles.MaxPageSize)
	assert.Equal(t, 30, cfg.Articles.DefaultCandidateLimit)
	assert.Equal(t, "https://www.h3llo.dk", cfg.Sitemap.BaseURL)
	assert.Len(t, cfg.Sitemap.StaticPages, 4)
	assert.Equal(t, "gpt-4-turbo-preview", cfg.OpenAI.Model)
	assert.Equal(t, SignupConfig{Range: "Sheet1!A:A", BaseCount: 31, Capacity: 500}, cfg.Signup)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "cms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
store:
  driver: postgres
  databaseDsn: postgres://file
sitemap:
  staticPages:
    - path: om-os
      changefreq: monthly
      priority: "0.6"
`), 0o600))

	t.Setenv(configPathEnv, path)
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("ALLOWED_ORIGINS", "https://a.dk, https://b.dk")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://env", cfg.Store.DatabaseDSN)
	assert.Equal(t, 2, cfg.Store.RedisDB)
	assert.Equal(t, []string{"https://a.dk", "https://b.dk"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, []StaticPage{{Path: "om-os", ChangeFreq: "monthly", Priority: "0.6"}}, cfg.Sitemap.StaticPages)
	// untouched sections keep their defaults
	assert.Equal(t, "https://www.h3llo.dk", cfg.Sitemap.BaseURL)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"bad int", map[string]string{"REDIS_DB": "two"}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "mongo"}},
		{"postgres without dsn", map[string]string{"STORE_DRIVER": "postgres"}},
		{"zero page size", map[string]string{"MAX_PAGE_SIZE": "0"}},
		{"missing file", map[string]string{configPathEnv: "/does/not/exist.yaml"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
