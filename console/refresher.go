package console

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/shanakama/smart-auto-scaler/healthendpoint"
)

// RefreshInterval is the fixed cadence of the watch-mode dashboard.
const RefreshInterval = 10 * time.Second

// DashboardRefresher drives the watch-mode dashboard: on every tick it
// refetches statistics and re-renders. A refresh already in flight when the
// process is signalled is left to finish on its own.
type DashboardRefresher struct {
	dashboard *DashboardController
	collector healthendpoint.RefreshCollector
	clock     clock.Clock
	logger    lager.Logger
	render    func()
}

func NewDashboardRefresher(dashboard *DashboardController, collector healthendpoint.RefreshCollector, clock clock.Clock, logger lager.Logger, render func()) *DashboardRefresher {
	return &DashboardRefresher{
		dashboard: dashboard,
		collector: collector,
		clock:     clock,
		logger:    logger,
		render:    render,
	}
}

func (r *DashboardRefresher) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	close(ready)
	ticker := r.clock.NewTicker(RefreshInterval)

	r.logger.Info("started", lager.Data{"refresh_interval": RefreshInterval})

	for {
		r.refresh()
		select {
		case <-signals:
			ticker.Stop()
			r.logger.Info("stopped")
			return nil
		case <-ticker.C():
		}
	}
}

func (r *DashboardRefresher) refresh() {
	r.collector.IncRefresh()
	if err := r.dashboard.RefreshStatistics(); err != nil {
		r.collector.IncRefreshFailure()
	}
	if r.render != nil {
		r.render()
	}
}
