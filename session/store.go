package session

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager"
)

// State is the durable session record. Exactly these two keys are
// persisted, nothing else ever ends up in the session file.
type State struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username"`
}

type Store interface {
	Read() (State, error)
	Write(state State) error
	Clear() error
}

type fileStore struct {
	path   string
	logger lager.Logger
}

func NewFileStore(path string, logger lager.Logger) Store {
	return &fileStore{
		path:   path,
		logger: logger.Session("session-store", lager.Data{"path": path}),
	}
}

// Read returns the persisted session. A missing or corrupted file is not an
// error, it reads as logged out.
func (s *fileStore) Read() (State, error) {
	bytes, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		s.logger.Error("failed-to-read-session-file", err)
		return State{}, err
	}
	state := State{}
	err = json.Unmarshal(bytes, &state)
	if err != nil {
		s.logger.Error("failed-to-parse-session-file", err)
		return State{}, nil
	}
	return state, nil
}

func (s *fileStore) Write(state State) error {
	err := os.MkdirAll(filepath.Dir(s.path), 0700)
	if err != nil {
		s.logger.Error("failed-to-create-session-dir", err)
		return err
	}
	bytes, err := json.Marshal(state)
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(s.path, bytes, 0600)
	if err != nil {
		s.logger.Error("failed-to-write-session-file", err)
		return err
	}
	return nil
}

func (s *fileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error("failed-to-remove-session-file", err)
		return err
	}
	return nil
}
