package scalerapi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shanakama/smart-auto-scaler/models"
)

const DefaultURL = "http://localhost:5404"

type Config struct {
	URL               string          `yaml:"url"`
	SkipSSLValidation bool            `yaml:"skip_ssl_validation"`
	TLSCerts          models.TLSCerts `yaml:"tls"`
	EnableDebugTrace  bool            `yaml:"enable_debug_trace"`
}

func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("Configuration error: api url is empty")
	}
	parsed, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("Configuration error: api url is not a valid url: %s", err.Error())
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("Configuration error: api url scheme must be http or https")
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	return nil
}
