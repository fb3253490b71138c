package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBaseURL, EnvPort, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.ServerURL())
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBaseURL, "https://api.example.com/")
	t.Setenv(EnvPort, "8443")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg := FromEnv()
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://api.example.com:8443", cfg.ServerURL())
}

func TestServerURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		port    string
		want    string
	}{
		{name: "defaults", baseURL: "http://localhost", port: "3000", want: "http://localhost:3000"},
		{name: "trailing slash", baseURL: "http://localhost/", port: "3000", want: "http://localhost:3000"},
		{name: "base already has port", baseURL: "http://localhost:9000", port: "3000", want: "http://localhost:9000"},
		{name: "base with path", baseURL: "https://example.com/api", port: "8080", want: "https://example.com:8080/api"},
		{name: "ipv6 host", baseURL: "http://[::1]", port: "3000", want: "http://[::1]:3000"},
		{name: "empty port", baseURL: "http://localhost", port: "", want: "http://localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{BaseURL: tt.baseURL, Port: tt.port}
			if got := cfg.ServerURL(); got != tt.want {
				t.Errorf("ServerURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantFields []string
	}{
		{
			name: "valid",
			cfg:  Config{BaseURL: "http://localhost", Port: "3000", LogLevel: "info", LogFormat: "json"},
		},
		{
			name:       "port out of range",
			cfg:        Config{BaseURL: "http://localhost", Port: "70000", LogLevel: "info", LogFormat: "json"},
			wantFields: []string{"Port"},
		},
		{
			name:       "port not a number",
			cfg:        Config{BaseURL: "http://localhost", Port: "http", LogLevel: "info", LogFormat: "json"},
			wantFields: []string{"Port"},
		},
		{
			name:       "bad base url and level",
			cfg:        Config{BaseURL: "not a url", Port: "3000", LogLevel: "loud", LogFormat: "json"},
			wantFields: []string{"BaseURL", "LogLevel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "8080")

	cfg, err := Load("utilkit-test")
	require.NoError(t, err)
	require.NotNil(t, cfg.Log)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL())

	t.Setenv(EnvPort, "0")
	_, err = Load("utilkit-test")
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BASE_URL=https://from-dotenv.test\nPORT=4000\n"), 0o600))

	// godotenv does not override variables that are already set.
	t.Setenv(EnvPort, "5000")
	require.NoError(t, os.Unsetenv(EnvBaseURL))

	require.NoError(t, LoadDotenv(filepath.Join(dir, "missing.env"), path))
	t.Cleanup(func() { os.Unsetenv(EnvBaseURL) })

	assert.Equal(t, "https://from-dotenv.test", os.Getenv(EnvBaseURL))
	assert.Equal(t, "5000", os.Getenv(EnvPort))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("UTILKIT_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetEnv("UTILKIT_TEST_VALUE", "fallback"))

	t.Setenv("UTILKIT_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("UTILKIT_TEST_VALUE", "fallback"))
}
