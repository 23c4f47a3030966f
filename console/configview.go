package console

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/shanakama/smart-auto-scaler/configvalidator"
	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/scalerapi"
	"github.com/shanakama/smart-auto-scaler/ui"
)

// SavedMessageDuration is how long the save confirmation stays on screen.
const SavedMessageDuration = 3 * time.Second

type ConfigView struct {
	Loading bool
	Saving  bool
	Error   string
	Message string
	Config  *models.ScalerConfig
}

type ConfigController struct {
	client    scalerapi.ScalerClient
	validator *configvalidator.ConfigValidator
	clock     clock.Clock
	logger    lager.Logger

	lock sync.RWMutex
	view ConfigView
	// messageToken invalidates the clear timer of an older save when a
	// newer save re-arms the confirmation message.
	messageToken int
}

func NewConfigController(client scalerapi.ScalerClient, validator *configvalidator.ConfigValidator, clck clock.Clock, logger lager.Logger) *ConfigController {
	return &ConfigController{
		client:    client,
		validator: validator,
		clock:     clck,
		logger:    logger.Session("config-controller"),
	}
}

func (c *ConfigController) View() ConfigView {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.view
}

func (c *ConfigController) Load() error {
	c.lock.Lock()
	c.view.Loading = true
	c.lock.Unlock()

	conf, err := c.client.GetConfig()
	if err != nil {
		c.logger.Error("failed-to-fetch-config", err)
		c.lock.Lock()
		c.view.Loading = false
		c.view.Error = err.Error()
		c.lock.Unlock()
		return err
	}

	c.lock.Lock()
	c.view.Loading = false
	c.view.Error = ""
	c.view.Config = conf
	c.lock.Unlock()
	return nil
}

// Save validates the update, posts it, and shows a confirmation that clears
// itself after SavedMessageDuration. Saving again re-arms the timer.
func (c *ConfigController) Save(update models.ConfigUpdate) error {
	c.lock.Lock()
	c.view.Saving = true
	c.lock.Unlock()

	updateBytes, err := json.Marshal(update)
	if err != nil {
		return c.failSave("failed-to-marshal-config-update", err)
	}
	validationErrResult, valid := c.validator.ValidateConfigUpdate(string(updateBytes))
	if !valid {
		errJSON, err := json.Marshal(validationErrResult)
		if err != nil {
			return c.failSave("failed-to-marshal-validation-errors", err)
		}
		return c.failSave("invalid-config-update", fmt.Errorf("invalid config update: %s", string(errJSON)))
	}

	conf, err := c.client.UpdateConfig(update)
	if err != nil {
		return c.failSave("failed-to-save-config", err)
	}

	c.lock.Lock()
	c.view.Saving = false
	c.view.Error = ""
	c.view.Config = conf
	c.view.Message = ui.ConfigSaved
	c.messageToken++
	token := c.messageToken
	c.lock.Unlock()

	timer := c.clock.NewTimer(SavedMessageDuration)
	go func() {
		<-timer.C()
		c.lock.Lock()
		if token == c.messageToken {
			c.view.Message = ""
		}
		c.lock.Unlock()
	}()
	return nil
}

func (c *ConfigController) failSave(action string, err error) error {
	c.logger.Error(action, err)
	c.lock.Lock()
	c.view.Saving = false
	c.view.Error = err.Error()
	c.lock.Unlock()
	return err
}
