package blurplehook

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
webhook_url: "https://discord.com/api/webhooks/1/abc"
username: "CI Bot"
wait_for_response: false
http:
  timeout_seconds: 10
  user_agent: "custom-agent"
queue:
  batch_size: 1
  interval_ms: 500
log:
  log_level: "debug"
  log_format: "json"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", cfg.WebhookURL)
	assert.Equal(t, "CI Bot", cfg.Username)
	assert.False(t, cfg.WaitForResponse)
	assert.Equal(t, 10, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, "custom-agent", cfg.HTTP.UserAgent)
	assert.Equal(t, 1, cfg.Queue.BatchSize)
	assert.Equal(t, 500, cfg.Queue.IntervalMS)
	assert.Equal(t, "debug", cfg.Log.LogLevel)
	assert.Equal(t, "json", cfg.Log.LogFormat)

	// defaults layer under the file
	assert.Equal(t, 100, cfg.Log.MaxLogSizeMB)
}

func TestLoadConfig_DefaultsApply(t *testing.T) {
	path := writeConfigFile(t, `
webhook_url: "https://discord.com/api/webhooks/1/abc"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.WaitForResponse)
	assert.Equal(t, defaultQueueBatchSize, cfg.Queue.BatchSize)
	assert.Equal(t, int(defaultQueueInterval/time.Millisecond), cfg.Queue.IntervalMS)
	assert.Equal(t, "info", cfg.Log.LogLevel)
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing webhook URL", content: `username: "Bot"`},
		{name: "malformed webhook URL", content: `webhook_url: "not a url"`},
		{
			name: "unknown log level",
			content: `
webhook_url: "https://discord.com/api/webhooks/1/abc"
log:
  log_level: "loud"
`,
		},
		{
			name: "negative batch size",
			content: `
webhook_url: "https://discord.com/api/webhooks/1/abc"
queue:
  batch_size: -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfigFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewWebhookFromConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.WebhookURL = "https://discord.com/api/webhooks/1/abc"
	cfg.Username = "CI Bot"
	cfg.AvatarURL = "https://example.com/avatar.png"

	webhook, err := NewWebhookFromConfig(cfg)
	require.NoError(t, err)

	payload := webhook.Payload()
	require.NotNil(t, payload.Username)
	assert.Equal(t, "CI Bot", *payload.Username)
	require.NotNil(t, payload.AvatarURL)
	assert.Equal(t, "https://example.com/avatar.png", *payload.AvatarURL)
	assert.Nil(t, payload.Content)
}

func TestNewSenderFromConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.WebhookURL = "https://discord.com/api/webhooks/1/abc"

	sender, err := NewSenderFromConfig(cfg)
	require.NoError(t, err)
	assert.NotNil(t, sender)
	assert.True(t, sender.wait)
}

func TestNewQueueFromConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.WebhookURL = "https://discord.com/api/webhooks/1/abc"
	cfg.Queue.BatchSize = 3
	cfg.Queue.IntervalMS = 100

	queue, err := NewQueueFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, queue.batchSize)
	assert.Equal(t, 100*time.Millisecond, queue.interval)
}
