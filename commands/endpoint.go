package commands

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager"
)

// endpointOverride is what 'scalerctl api URL' persists. When present it
// takes precedence over the api block of the configuration file.
type endpointOverride struct {
	URL               string `json:"url"`
	SkipSSLValidation bool   `json:"skip_ssl_validation"`
}

func endpointFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scalerctl", "endpoint.json"), nil
}

// readEndpoint returns nil when no override has been stored.
func readEndpoint(logger lager.Logger) (*endpointOverride, error) {
	path, err := endpointFilePath()
	if err != nil {
		return nil, err
	}
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		logger.Error("failed-to-read-endpoint-file", err)
		return nil, err
	}
	override := &endpointOverride{}
	err = json.Unmarshal(bytes, override)
	if err != nil {
		logger.Error("failed-to-parse-endpoint-file", err, lager.Data{"path": path})
		return nil, err
	}
	return override, nil
}

func writeEndpoint(override endpointOverride, logger lager.Logger) error {
	path, err := endpointFilePath()
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		logger.Error("failed-to-create-endpoint-dir", err)
		return err
	}
	bytes, err := json.Marshal(override)
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(path, bytes, 0600)
	if err != nil {
		logger.Error("failed-to-write-endpoint-file", err)
		return err
	}
	return nil
}

func clearEndpoint(logger lager.Logger) error {
	path, err := endpointFilePath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		logger.Error("failed-to-remove-endpoint-file", err)
		return err
	}
	return nil
}
