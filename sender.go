package blurplehook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/rs/zerolog"

	"github.com/0xlunar/blurple-hook/internal/httpclient"
)

// Sender serializes webhook messages and dispatches them with a single HTTP
// POST each. It is safe for concurrent use; independent sends share nothing
// but the underlying connection pool.
type Sender struct {
	logger     zerolog.Logger
	client     *httpclient.Client
	httpConfig *HTTPConfig
	wait       bool
}

// SenderOption configures a Sender
type SenderOption func(*Sender)

// WithLogger attaches a logger. The default is zerolog.Nop, so the send path
// logs nothing unless a caller opts in.
func WithLogger(logger zerolog.Logger) SenderOption {
	return func(s *Sender) {
		s.logger = logger
	}
}

// WithHTTPConfig replaces the default transport configuration
func WithHTTPConfig(config HTTPConfig) SenderOption {
	return func(s *Sender) {
		s.httpConfig = &config
	}
}

// WithWaitResponse controls whether the "wait=true" query parameter is
// appended so the remote service returns the created message instead of a 204.
// It defaults to true.
func WithWaitResponse(wait bool) SenderOption {
	return func(s *Sender) {
		s.wait = wait
	}
}

// NewSender creates a Sender. It fails only when a custom HTTP configuration
// cannot produce a transport (e.g. an unparsable proxy URL).
func NewSender(opts ...SenderOption) (*Sender, error) {
	s := &Sender{
		logger: zerolog.Nop(),
		wait:   true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.httpConfig != nil {
		client, err := httpclient.New(s.httpConfig.toInternal(), s.logger)
		if err != nil {
			return nil, WrapError(err, "failed to build HTTP client")
		}
		s.client = client
	} else {
		s.client = httpclient.NewDefault(s.logger)
	}

	s.logger = s.logger.With().Str("component", "Sender").Logger()
	return s, nil
}

// Send serializes the webhook's message and POSTs it to the endpoint with a
// JSON content type. Exactly one request is issued; there are no retries.
// A non-2xx response is returned as a *DeliveryError, a transport failure as
// a *NetworkError.
func (s *Sender) Send(ctx context.Context, w *Webhook) error {
	payload := w.Payload()

	body, err := json.Marshal(payload)
	if err != nil {
		return WrapError(err, "failed to marshal webhook payload")
	}

	target := w.url
	if s.wait {
		target = appendWaitParam(target)
	}

	resp, err := s.client.Do(&httpclient.Request{
		URL:    target,
		Method: http.MethodPost,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body:    bytes.NewReader(body),
		Context: ctx,
	})
	if err != nil {
		return NewNetworkError(w.url, "webhook request failed", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error().
			Int("status_code", resp.StatusCode).
			Str("webhook_url", w.url).
			Str("response_body", string(resp.Body)).
			Msg("Webhook delivery rejected")
		return NewDeliveryError(resp.StatusCode, resp.Body, w.url)
	}

	s.logger.Info().
		Int("status_code", resp.StatusCode).
		Str("webhook_url", w.url).
		Int("embed_count", len(payload.Embeds)).
		Msg("Webhook delivered")
	return nil
}

// appendWaitParam adds wait=true to the endpoint's query string, keeping any
// query parameters already present.
func appendWaitParam(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set("wait", "true")
	u.RawQuery = q.Encode()
	return u.String()
}

var (
	defaultSenderOnce sync.Once
	defaultSenderInst *Sender
)

// defaultSender backs Webhook.Send for callers that never construct a Sender.
// NewSender cannot fail without a custom HTTP configuration.
func defaultSender() *Sender {
	defaultSenderOnce.Do(func() {
		defaultSenderInst, _ = NewSender()
	})
	return defaultSenderInst
}
