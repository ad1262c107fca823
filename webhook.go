package blurplehook

import (
	"context"
	"net/url"
)

// Webhook accumulates a webhook message for a single endpoint. The endpoint is
// fixed at construction; everything else is set through chainable methods and
// starts out unset. One Send issues exactly one HTTP POST.
type Webhook struct {
	url     string
	message Message
}

// New creates a webhook builder for the given endpoint URL. It fails if the
// URL is empty or does not parse.
func New(webhookURL string) (*Webhook, error) {
	if webhookURL == "" {
		return nil, ErrEmptyWebhookURL
	}

	if _, err := url.ParseRequestURI(webhookURL); err != nil {
		return nil, WrapError(err, ErrInvalidWebhookURL.Error())
	}

	return &Webhook{url: webhookURL}, nil
}

// URL returns the endpoint the webhook was constructed with
func (w *Webhook) URL() string {
	return w.url
}

// WithContent sets the message text. The empty string is a valid value,
// distinct from leaving the content unset.
func (w *Webhook) WithContent(content string) *Webhook {
	w.message.Content = &content
	return w
}

// WithUsername overrides the endpoint's default display username
func (w *Webhook) WithUsername(username string) *Webhook {
	w.message.Username = &username
	return w
}

// WithAvatarURL overrides the endpoint's default avatar
func (w *Webhook) WithAvatarURL(avatarURL string) *Webhook {
	w.message.AvatarURL = &avatarURL
	return w
}

// AddEmbed appends one embed to the message, preserving insertion order. The
// embed is copied in: mutating the builder it came from afterwards does not
// alter the message.
func (w *Webhook) AddEmbed(embed Embed) *Webhook {
	w.message.Embeds = append(w.message.Embeds, embed.clone())
	return w
}

// AddEmbeds appends multiple embeds to the message, preserving input order
func (w *Webhook) AddEmbeds(embeds ...Embed) *Webhook {
	for _, embed := range embeds {
		w.AddEmbed(embed)
	}
	return w
}

// Payload returns a snapshot of the wire payload as it would be serialized
func (w *Webhook) Payload() Message {
	message := w.message
	if message.Embeds != nil {
		message.Embeds = append([]Embed(nil), message.Embeds...)
	}
	return message
}

// Validate checks every attached embed against the remote service's limits.
// Advisory only: Send does not call it.
func (w *Webhook) Validate() error {
	validator := NewEmbedValidator()
	for _, embed := range w.message.Embeds {
		if err := validator.ValidateEmbed(embed); err != nil {
			return err
		}
	}
	return nil
}

// Send delivers the message with a single HTTP POST through the package's
// default Sender. Use a Sender directly to control transport, logging or the
// wait-for-response behaviour.
func (w *Webhook) Send(ctx context.Context) error {
	return defaultSender().Send(ctx, w)
}
