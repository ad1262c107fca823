package blurplehook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		webhookURL string
		wantErr    error
	}{
		{name: "valid https URL", webhookURL: "https://discord.com/api/webhooks/1/abc"},
		{name: "empty URL", webhookURL: "", wantErr: ErrEmptyWebhookURL},
		{name: "not a URL", webhookURL: "not a url", wantErr: ErrInvalidWebhookURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			webhook, err := New(tt.webhookURL)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, webhook)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.webhookURL, webhook.URL())
		})
	}
}

func TestWebhook_MinimalPayloadOmitsUnsetFields(t *testing.T) {
	webhook, err := New("https://example.test/hook")
	require.NoError(t, err)

	data, err := json.Marshal(webhook.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestWebhook_EmptyStringDistinctFromUnset(t *testing.T) {
	webhook, err := New("https://example.test/hook")
	require.NoError(t, err)
	webhook.WithContent("")

	data, err := json.Marshal(webhook.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":""}`, string(data))
}

func TestWebhook_EmbedOrderPreserved(t *testing.T) {
	first, err := NewEmbedBuilder().WithTitle("first").Build()
	require.NoError(t, err)
	second, err := NewEmbedBuilder().WithTitle("second").Build()
	require.NoError(t, err)
	third, err := NewEmbedBuilder().WithTitle("third").Build()
	require.NoError(t, err)

	webhook, err := New("https://example.test/hook")
	require.NoError(t, err)
	webhook.AddEmbed(first).AddEmbeds(second, third)

	payload := webhook.Payload()
	require.Len(t, payload.Embeds, 3)
	assert.Equal(t, "first", payload.Embeds[0].Title)
	assert.Equal(t, "second", payload.Embeds[1].Title)
	assert.Equal(t, "third", payload.Embeds[2].Title)
}

func TestWebhook_AddedEmbedIsSnapshot(t *testing.T) {
	builder := NewEmbedBuilder().WithTitle("snapshot").AddField("A", "1", false)
	embed, err := builder.Build()
	require.NoError(t, err)

	webhook, err := New("https://example.test/hook")
	require.NoError(t, err)
	webhook.AddEmbed(embed)

	// mutating the detached builder must not reach the attached embed
	builder.WithTitle("changed").AddField("B", "2", false)

	payload := webhook.Payload()
	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, "snapshot", payload.Embeds[0].Title)
	assert.Len(t, payload.Embeds[0].Fields, 1)
}

func TestWebhook_EndToEndPayload(t *testing.T) {
	embed, err := NewEmbedBuilder().
		WithTitle("Title").
		WithColour(Hex("#FF0000")).
		AddField("A", "1", true).
		AddField("B", "2", false).
		Build()
	require.NoError(t, err)

	webhook, err := New("https://example.test/hook")
	require.NoError(t, err)
	webhook.WithUsername("Bot").WithContent("Hello").AddEmbed(embed)

	data, err := json.Marshal(webhook.Payload())
	require.NoError(t, err)

	var decoded struct {
		Content  string `json:"content"`
		Username string `json:"username"`
		Embeds   []struct {
			Title  string `json:"title"`
			Color  int    `json:"color"`
			Fields []struct {
				Name   string `json:"name"`
				Value  string `json:"value"`
				Inline bool   `json:"inline"`
			} `json:"fields"`
		} `json:"embeds"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Hello", decoded.Content)
	assert.Equal(t, "Bot", decoded.Username)
	require.Len(t, decoded.Embeds, 1)
	assert.Equal(t, 16711680, decoded.Embeds[0].Color)
	require.Len(t, decoded.Embeds[0].Fields, 2)
	assert.Equal(t, "A", decoded.Embeds[0].Fields[0].Name)
	assert.True(t, decoded.Embeds[0].Fields[0].Inline)
	assert.Equal(t, "B", decoded.Embeds[0].Fields[1].Name)
	assert.False(t, decoded.Embeds[0].Fields[1].Inline)
}

func TestWebhook_Validate(t *testing.T) {
	tooMany := NewEmbedBuilder()
	for i := 0; i < 26; i++ {
		tooMany.AddField("name", "value", false)
	}
	embed, err := tooMany.Build()
	require.NoError(t, err)

	webhook, err := New("https://example.test/hook")
	require.NoError(t, err)
	webhook.AddEmbed(embed)

	var validationErr *ValidationError
	assert.ErrorAs(t, webhook.Validate(), &validationErr)
}
