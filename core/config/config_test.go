package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
backend:
  api_key: "dev-api-key"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
	require.Equal(t, "http://localhost:3001", cfg.Backend.URL)
}

func TestNormalizeRejectsMissingToken(t *testing.T) {
	err := Normalize(&Config{Backend: BackendConfig{APIKey: "k"}})
	require.Error(t, err)
}

func TestNormalizeRejectsMissingAPIKey(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "123:abc"}}
	err := Normalize(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "api_key")
}

func TestNormalizeWebhookRequiresListener(t *testing.T) {
	cfg := &Config{
		Telegram: TelegramConfig{Token: "123:abc", RunMode: "webhook"},
		Backend:  BackendConfig{APIKey: "k"},
		Webhook:  WebhookConfig{URL: "https://bot.example.com"},
	}
	require.Error(t, Normalize(cfg))
}

func TestNormalizeTrimsBackendURL(t *testing.T) {
	cfg := &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
		Backend:  BackendConfig{URL: "http://backend:3001/", APIKey: "k"},
	}
	require.NoError(t, Normalize(cfg))
	require.Equal(t, "http://backend:3001", cfg.Backend.URL)
}

func TestNormalizeRejectsUnknownRateLimitExclusion(t *testing.T) {
	cfg := &Config{
		Telegram:  TelegramConfig{Token: "123:abc"},
		Backend:   BackendConfig{APIKey: "k"},
		RateLimit: RateLimitConfig{ExcludeUpdates: []string{"inline_query"}},
	}
	require.Error(t, Normalize(cfg))
}
