package console

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/scalerapi"
)

// DashboardView is a point-in-time snapshot of the dashboard state. A failed
// load keeps the previously fetched data so a flaky backend does not blank
// the screen.
type DashboardView struct {
	Loading    bool
	Error      string
	Statistics *models.Statistics
	Autoscale  *models.AutoscaleStatus
	Health     *models.HealthStatus
}

type DashboardController struct {
	client scalerapi.ScalerClient
	logger lager.Logger

	lock sync.RWMutex
	view DashboardView
}

func NewDashboardController(client scalerapi.ScalerClient, logger lager.Logger) *DashboardController {
	return &DashboardController{
		client: client,
		logger: logger.Session("dashboard-controller"),
	}
}

func (c *DashboardController) View() DashboardView {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.view
}

func (c *DashboardController) Load() error {
	c.lock.Lock()
	c.view.Loading = true
	c.lock.Unlock()

	statistics, err := c.client.GetStatistics()
	if err != nil {
		return c.failLoad("failed-to-fetch-statistics", err)
	}
	autoscale, err := c.client.GetAutoscaleStatus()
	if err != nil {
		return c.failLoad("failed-to-fetch-autoscale-status", err)
	}
	health, err := c.client.CheckHealth()
	if err != nil {
		return c.failLoad("failed-to-fetch-health", err)
	}

	c.lock.Lock()
	c.view.Loading = false
	c.view.Error = ""
	c.view.Statistics = statistics
	c.view.Autoscale = autoscale
	c.view.Health = health
	c.lock.Unlock()
	return nil
}

// RefreshStatistics refetches statistics only. Failures leave the whole
// view untouched: the last good snapshot stays on screen between ticks.
func (c *DashboardController) RefreshStatistics() error {
	statistics, err := c.client.GetStatistics()
	if err != nil {
		c.logger.Error("failed-to-refresh-statistics", err)
		return err
	}
	c.lock.Lock()
	c.view.Statistics = statistics
	c.lock.Unlock()
	return nil
}

func (c *DashboardController) failLoad(action string, err error) error {
	c.logger.Error(action, err)
	c.lock.Lock()
	c.view.Loading = false
	c.view.Error = err.Error()
	c.lock.Unlock()
	return err
}
