package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/helpers"
	"github.com/shanakama/smart-auto-scaler/scalerapi"
	"github.com/shanakama/smart-auto-scaler/session"
)

type DashboardConfig struct {
	DecisionLimit  int           `yaml:"decision_limit"`
	DetailCacheTTL time.Duration `yaml:"detail_cache_ttl"`
	MetricsPort    int           `yaml:"metrics_port"`
}

type Config struct {
	API       scalerapi.Config      `yaml:"api"`
	Logging   helpers.LoggingConfig `yaml:"logging"`
	Auth      session.AuthConfig    `yaml:"auth"`
	Session   session.Config        `yaml:"session"`
	Dashboard DashboardConfig       `yaml:"dashboard"`
}

var defaultConfig = Config{
	API:     scalerapi.Config{URL: scalerapi.DefaultURL},
	Logging: helpers.LoggingConfig{Level: helpers.DefaultLoggingLevel},
	Auth: session.AuthConfig{
		Username: session.DefaultUsername,
		Password: session.DefaultPassword,
	},
	Session: session.Config{
		VerificationDelay: session.DefaultVerificationDelay,
	},
	Dashboard: DashboardConfig{
		DecisionLimit:  console.DefaultDecisionLimit,
		DetailCacheTTL: console.DefaultDetailCacheTTL,
	},
}

// DefaultConfig is what the console runs with when no configuration file
// is given.
func DefaultConfig() Config {
	return defaultConfig
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := defaultConfig

	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(bytes, &conf)
	if err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)

	return &conf, nil
}

func (c *Config) Validate() error {
	err := c.API.Validate()
	if err != nil {
		return err
	}

	err = c.Auth.Validate()
	if err != nil {
		return err
	}

	if c.Dashboard.DecisionLimit < 0 {
		return fmt.Errorf("Configuration error: dashboard decision_limit is negative")
	}

	if c.Dashboard.DetailCacheTTL < 0 {
		return fmt.Errorf("Configuration error: dashboard detail_cache_ttl is negative")
	}

	if c.Dashboard.MetricsPort < 0 {
		return fmt.Errorf("Configuration error: dashboard metrics_port is negative")
	}

	return nil
}
