package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/shanakama/smart-auto-scaler/console/config"
	"github.com/shanakama/smart-auto-scaler/helpers"
	"github.com/shanakama/smart-auto-scaler/scalerapi"
	"github.com/shanakama/smart-auto-scaler/session"
	"github.com/shanakama/smart-auto-scaler/ui"
)

const ConfigFileEnv = "SCALERCTL_CONFIG_FILE"

// runtime carries what every command needs: the effective configuration,
// with a stored endpoint override already applied, and the logger. Client
// and guard are built on demand so that purely local commands never
// construct them.
type runtime struct {
	conf   *config.Config
	logger lager.Logger
}

func newRuntime() (*runtime, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "scalerctl")

	override, err := readEndpoint(logger)
	if err != nil {
		return nil, err
	}
	if override != nil {
		conf.API.URL = override.URL
		conf.API.SkipSSLValidation = override.SkipSSLValidation
	}

	return &runtime{conf: conf, logger: logger}, nil
}

func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path == "" {
		conf := config.DefaultConfig()
		return &conf, nil
	}

	reader, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %q: %s", path, err.Error())
	}
	defer reader.Close()

	conf, err := config.LoadConfig(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %s", path, err.Error())
	}
	err = conf.Validate()
	if err != nil {
		return nil, err
	}
	return conf, nil
}

func (rt *runtime) Client() (scalerapi.ScalerClient, error) {
	return scalerapi.NewScalerClient(&rt.conf.API, rt.logger)
}

func (rt *runtime) Guard() (*session.Guard, error) {
	sessionFile, err := rt.conf.Session.FilePath()
	if err != nil {
		return nil, err
	}
	store := session.NewFileStore(sessionFile, rt.logger)
	return session.NewGuard(&rt.conf.Auth, store, clock.NewClock(), rt.conf.Session.VerificationDelay, rt.logger)
}

// RequireSession is the gate every operational command passes through: a
// valid session must be stored before the backend is touched.
func (rt *runtime) RequireSession() (scalerapi.ScalerClient, error) {
	guard, err := rt.Guard()
	if err != nil {
		return nil, err
	}
	_, err = guard.Require()
	if err != nil {
		if err == session.ErrNotLoggedIn {
			ui.SayMessage(ui.NotLoggedIn)
		}
		ui.SayFailed()
		return nil, err
	}
	return rt.Client()
}
