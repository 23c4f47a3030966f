package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultUsername          = "admin"
	DefaultPassword          = "admin"
	DefaultVerificationDelay = 800 * time.Millisecond
)

// AuthConfig is the credential the guard verifies logins against. Either the
// cleartext or the bcrypt hash may be configured, not both. With neither,
// the guard falls back to admin/admin.
type AuthConfig struct {
	Username     string `yaml:"username"`
	UsernameHash string `yaml:"username_hash"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

func (c *AuthConfig) Validate() error {
	if c.Username != "" && c.UsernameHash != "" {
		return fmt.Errorf("Configuration error: both auth username and username_hash are set, please provide only one of them")
	}
	if c.Password != "" && c.PasswordHash != "" {
		return fmt.Errorf("Configuration error: both auth password and password_hash are set, please provide only one of them")
	}
	if c.UsernameHash != "" {
		if _, err := bcrypt.Cost([]byte(c.UsernameHash)); err != nil {
			return fmt.Errorf("Configuration error: auth username_hash is not a valid bcrypt hash")
		}
	}
	if c.PasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(c.PasswordHash)); err != nil {
			return fmt.Errorf("Configuration error: auth password_hash is not a valid bcrypt hash")
		}
	}
	return nil
}

type Config struct {
	File              string        `yaml:"file"`
	VerificationDelay time.Duration `yaml:"verification_delay"`
}

// FilePath resolves the session file location, defaulting to
// ~/.scalerctl/session.json when none is configured.
func (c *Config) FilePath() (string, error) {
	if c.File != "" {
		return c.File, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scalerctl", "session.json"), nil
}
