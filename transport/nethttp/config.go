package nethttp

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultTimeout = 30 * time.Second

// Config configures the net/http transport adapter. These knobs tune
// the collaborator performing the exchange; none of them are part of
// the dispatch contract.
type Config struct {
	// Timeout bounds one full exchange. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`

	// ProxyURL routes exchanges through an HTTP proxy when set.
	ProxyURL string `yaml:"proxy_url" mapstructure:"proxy_url" validate:"omitempty,url"`

	// UserAgent is sent when the call carries no User-Agent header.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// DefaultHeaders are applied before the call's own headers; a call
	// header with the same name is added alongside, not instead.
	DefaultHeaders map[string]string `yaml:"default_headers" mapstructure:"default_headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("nethttp: timeout must be positive")
	}
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("nethttp: invalid config: %w", err)
	}
	return nil
}

var (
	structValidator *validator.Validate
	validatorOnce   sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}
