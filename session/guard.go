package session

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Session struct {
	Username string
}

// Guard verifies logins against the configured credential and keeps the
// resulting session in the durable store. Credentials are held as bcrypt
// hashes only, cleartext config values are hashed at construction and
// dropped.
type Guard struct {
	store        Store
	clock        clock.Clock
	logger       lager.Logger
	delay        time.Duration
	usernameHash []byte
	passwordHash []byte
}

func NewGuard(conf *AuthConfig, store Store, clck clock.Clock, delay time.Duration, logger lager.Logger) (*Guard, error) {
	if delay <= 0 {
		delay = DefaultVerificationDelay
	}
	usernameHash, err := hashCredential(conf.Username, conf.UsernameHash, DefaultUsername)
	if err != nil {
		return nil, err
	}
	passwordHash, err := hashCredential(conf.Password, conf.PasswordHash, DefaultPassword)
	if err != nil {
		return nil, err
	}
	return &Guard{
		store:        store,
		clock:        clck,
		logger:       logger.Session("session-guard"),
		delay:        delay,
		usernameHash: usernameHash,
		passwordHash: passwordHash,
	}, nil
}

func hashCredential(cleartext string, hash string, fallback string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	if cleartext == "" {
		cleartext = fallback
	}
	// MinCost: the hash only lives for the process lifetime
	return bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.MinCost)
}

// Login simulates the verification round trip on the injected clock, then
// compares the credential. A failed login leaves whatever session is in the
// store untouched.
func (g *Guard) Login(username string, password string) (Session, error) {
	g.clock.Sleep(g.delay)
	usernameErr := bcrypt.CompareHashAndPassword(g.usernameHash, []byte(username))
	passwordErr := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password))
	if usernameErr != nil || passwordErr != nil {
		g.logger.Info("login-rejected", lager.Data{"username": username})
		return Session{}, ErrInvalidCredentials
	}
	err := g.store.Write(State{IsAuthenticated: true, Username: username})
	if err != nil {
		return Session{}, err
	}
	g.logger.Info("login-succeeded", lager.Data{"username": username})
	return Session{Username: username}, nil
}

func (g *Guard) Logout() error {
	err := g.store.Clear()
	if err != nil {
		return err
	}
	g.logger.Info("logged-out")
	return nil
}

// Require is the gate every operational command passes through before
// touching the backend.
func (g *Guard) Require() (Session, error) {
	state, err := g.store.Read()
	if err != nil {
		return Session{}, err
	}
	if !state.IsAuthenticated {
		return Session{}, ErrNotLoggedIn
	}
	return Session{Username: state.Username}, nil
}
