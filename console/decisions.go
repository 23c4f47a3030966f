package console

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/scalerapi"
)

// DefaultDecisionLimit is how many decisions the history table shows when no
// other page size was picked.
const DefaultDecisionLimit = 50

type DecisionsView struct {
	Loading   bool
	Error     string
	Limit     int
	Decisions []models.DecisionSummary
}

type DecisionsController struct {
	client scalerapi.ScalerClient
	logger lager.Logger

	lock sync.RWMutex
	view DecisionsView
}

func NewDecisionsController(client scalerapi.ScalerClient, logger lager.Logger) *DecisionsController {
	return &DecisionsController{
		client: client,
		logger: logger.Session("decisions-controller"),
		view:   DecisionsView{Limit: DefaultDecisionLimit},
	}
}

func (c *DecisionsController) View() DecisionsView {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.view
}

// SetLimit selects the page size. Anything but the supported sizes falls
// back to the default.
func (c *DecisionsController) SetLimit(limit int) {
	switch limit {
	case 10, 25, 50, 100:
	default:
		limit = DefaultDecisionLimit
	}
	c.lock.Lock()
	c.view.Limit = limit
	c.lock.Unlock()
}

func (c *DecisionsController) Load() error {
	c.lock.Lock()
	c.view.Loading = true
	limit := c.view.Limit
	c.lock.Unlock()

	decisions, err := c.client.GetDecisions(limit)
	if err != nil {
		c.logger.Error("failed-to-fetch-decisions", err)
		c.lock.Lock()
		c.view.Loading = false
		c.view.Error = err.Error()
		c.lock.Unlock()
		return err
	}

	// the backend returns oldest first; the table shows newest first
	summaries := models.NormalizeDecisions(decisions)
	for i, j := 0, len(summaries)-1; i < j; i, j = i+1, j-1 {
		summaries[i], summaries[j] = summaries[j], summaries[i]
	}

	c.lock.Lock()
	c.view.Loading = false
	c.view.Error = ""
	c.view.Decisions = summaries
	c.lock.Unlock()
	return nil
}
