package httpclient

import (
	"time"

	"github.com/rs/zerolog"
)

// Builder builds HTTP clients with a fluent interface
type Builder struct {
	config Config
	logger zerolog.Logger
}

// NewBuilder creates a new Builder with the default configuration
func NewBuilder(logger zerolog.Logger) *Builder {
	return &Builder{
		config: DefaultConfig(),
		logger: logger,
	}
}

// WithTimeout sets the request timeout
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.config.Timeout = timeout
	return b
}

// WithInsecureSkipVerify sets whether to skip TLS verification
func (b *Builder) WithInsecureSkipVerify(skip bool) *Builder {
	b.config.InsecureSkipVerify = skip
	return b
}

// WithFollowRedirects sets whether to follow redirects
func (b *Builder) WithFollowRedirects(follow bool) *Builder {
	b.config.FollowRedirects = follow
	return b
}

// WithMaxRedirects sets the maximum number of redirects to follow
func (b *Builder) WithMaxRedirects(max int) *Builder {
	b.config.MaxRedirects = max
	return b
}

// WithProxy sets the proxy URL
func (b *Builder) WithProxy(proxy string) *Builder {
	b.config.Proxy = proxy
	return b
}

// WithUserAgent sets the User-Agent header
func (b *Builder) WithUserAgent(userAgent string) *Builder {
	b.config.UserAgent = userAgent
	return b
}

// WithCustomHeader adds a header applied to every request
func (b *Builder) WithCustomHeader(key, value string) *Builder {
	if b.config.CustomHeaders == nil {
		b.config.CustomHeaders = make(map[string]string)
	}
	b.config.CustomHeaders[key] = value
	return b
}

// WithEnableHTTP2 sets whether HTTP/2 support is enabled
func (b *Builder) WithEnableHTTP2(enable bool) *Builder {
	b.config.EnableHTTP2 = enable
	return b
}

// Build creates the HTTP client with the configured settings
func (b *Builder) Build() (*Client, error) {
	return New(b.config, b.logger)
}
