package blurplehook

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/0xlunar/blurple-hook/internal/httpclient"
	"github.com/0xlunar/blurple-hook/internal/logger"
)

// Config declares a webhook sender setup loadable from a YAML file: the
// endpoint, default identity overrides, transport tuning, queue pacing and
// logging.
type Config struct {
	WebhookURL      string      `yaml:"webhook_url" validate:"required,url"`
	Username        string      `yaml:"username,omitempty"`
	AvatarURL       string      `yaml:"avatar_url,omitempty" validate:"omitempty,url"`
	WaitForResponse bool        `yaml:"wait_for_response"`
	HTTP            HTTPConfig  `yaml:"http,omitempty"`
	Queue           QueueConfig `yaml:"queue,omitempty"`
	Log             LogConfig   `yaml:"log,omitempty"`
}

// HTTPConfig tunes the HTTP transport
type HTTPConfig struct {
	TimeoutSeconds     int    `yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	Proxy              string `yaml:"proxy,omitempty" validate:"omitempty,url"`
	UserAgent          string `yaml:"user_agent,omitempty"`
	EnableHTTP2        bool   `yaml:"enable_http2"`
}

func (c HTTPConfig) toInternal() httpclient.Config {
	cfg := httpclient.DefaultConfig()
	if c.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	cfg.InsecureSkipVerify = c.InsecureSkipVerify
	cfg.Proxy = c.Proxy
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	cfg.EnableHTTP2 = c.EnableHTTP2
	return cfg
}

// QueueConfig tunes WebhookQueue pacing
type QueueConfig struct {
	BatchSize  int `yaml:"batch_size,omitempty" validate:"omitempty,min=1"`
	IntervalMS int `yaml:"interval_ms,omitempty" validate:"omitempty,min=1"`
}

// LogConfig declares logging output for senders built from configuration
type LogConfig struct {
	LogLevel      string `yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	LogFormat     string `yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogFile       string `yaml:"log_file,omitempty"`
	MaxLogSizeMB  int    `yaml:"max_log_size_mb,omitempty" validate:"omitempty,min=1"`
	MaxLogBackups int    `yaml:"max_log_backups,omitempty" validate:"omitempty,min=0"`
}

// NewDefaultConfig creates the default configuration: wait for the response
// body, default transport, original queue pacing, no logging output.
func NewDefaultConfig() Config {
	return Config{
		WaitForResponse: true,
		HTTP: HTTPConfig{
			EnableHTTP2: true,
		},
		Queue: QueueConfig{
			BatchSize:  defaultQueueBatchSize,
			IntervalMS: int(defaultQueueInterval / time.Millisecond),
		},
		Log: LogConfig{
			LogLevel:      "info",
			LogFormat:     "console",
			MaxLogSizeMB:  100,
			MaxLogBackups: 3,
		},
	}
}

// LoadConfig reads a YAML config file, layered over the defaults, and
// validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, WrapError(err, "failed to read config file")
	}

	cfg := NewDefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, WrapError(err, "failed to parse config file")
	}

	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateConfig performs validation on the Config structure
func ValidateConfig(cfg *Config) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			messages := make([]string, 0, len(errs))
			for _, e := range errs {
				msg := fmt.Sprintf("validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				messages = append(messages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
		}
		return WrapError(err, "configuration validation error")
	}

	return nil
}

// NewLoggerFromConfig builds the zerolog logger declared by the config's Log
// section. Without a log file it writes to stderr only.
func NewLoggerFromConfig(cfg Config) (zerolog.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	return logger.New(logger.LoggerConfig{
		Level:         level,
		Format:        logger.ParseFormat(cfg.Log.LogFormat),
		EnableConsole: true,
		EnableFile:    cfg.Log.LogFile != "",
		FilePath:      cfg.Log.LogFile,
		MaxSizeMB:     cfg.Log.MaxLogSizeMB,
		MaxBackups:    cfg.Log.MaxLogBackups,
	})
}

// NewSenderFromConfig builds a Sender wired with the config's transport,
// wait behaviour and logger.
func NewSenderFromConfig(cfg Config) (*Sender, error) {
	log, err := NewLoggerFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return NewSender(
		WithLogger(log),
		WithHTTPConfig(cfg.HTTP),
		WithWaitResponse(cfg.WaitForResponse),
	)
}

// NewWebhookFromConfig builds a webhook for the configured endpoint with the
// configured identity overrides applied.
func NewWebhookFromConfig(cfg Config) (*Webhook, error) {
	webhook, err := New(cfg.WebhookURL)
	if err != nil {
		return nil, err
	}

	if cfg.Username != "" {
		webhook.WithUsername(cfg.Username)
	}
	if cfg.AvatarURL != "" {
		webhook.WithAvatarURL(cfg.AvatarURL)
	}

	return webhook, nil
}

// NewQueueFromConfig builds a paced webhook queue over a config-built Sender
func NewQueueFromConfig(cfg Config) (*WebhookQueue, error) {
	sender, err := NewSenderFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	log, err := NewLoggerFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return NewWebhookQueue(
		sender,
		WithQueueLogger(log),
		WithQueuePacing(cfg.Queue.BatchSize, time.Duration(cfg.Queue.IntervalMS)*time.Millisecond),
	), nil
}
