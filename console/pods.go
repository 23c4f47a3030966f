package console

import (
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/lager"
	cache "github.com/patrickmn/go-cache"

	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/scalerapi"
)

// DefaultDetailCacheTTL bounds how stale a cached pod detail may get before
// a re-render fetches it again.
const DefaultDetailCacheTTL = 30 * time.Second

type PodsView struct {
	Loading bool
	Error   string
	Pods    []models.Pod
}

type PodsController struct {
	client      scalerapi.ScalerClient
	logger      lager.Logger
	detailCache *cache.Cache

	lock sync.RWMutex
	view PodsView
}

func NewPodsController(client scalerapi.ScalerClient, detailTTL time.Duration, logger lager.Logger) *PodsController {
	if detailTTL <= 0 {
		detailTTL = DefaultDetailCacheTTL
	}
	return &PodsController{
		client:      client,
		logger:      logger.Session("pods-controller"),
		detailCache: cache.New(detailTTL, 2*detailTTL),
	}
}

func (c *PodsController) View() PodsView {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.view
}

func (c *PodsController) Load() error {
	c.lock.Lock()
	c.view.Loading = true
	c.lock.Unlock()

	c.detailCache.Flush()

	pods, err := c.client.ListPods()
	if err != nil {
		c.logger.Error("failed-to-fetch-pods", err)
		c.lock.Lock()
		c.view.Loading = false
		c.view.Error = err.Error()
		c.lock.Unlock()
		return err
	}

	c.lock.Lock()
	c.view.Loading = false
	c.view.Error = ""
	c.view.Pods = pods
	c.lock.Unlock()
	return nil
}

// Detail returns one pod's live metrics, serving repeated requests for the
// same pod from the TTL cache so watch-mode re-renders do not refetch.
func (c *PodsController) Detail(namespace string, podName string) (*models.PodDetail, error) {
	key := fmt.Sprintf("%s/%s", namespace, podName)
	if cached, found := c.detailCache.Get(key); found {
		return cached.(*models.PodDetail), nil
	}

	detail, err := c.client.GetPodDetail(namespace, podName)
	if err != nil {
		c.logger.Error("failed-to-fetch-pod-detail", err, lager.Data{"pod": key})
		return nil, err
	}
	c.detailCache.Set(key, detail, cache.DefaultExpiration)
	return detail, nil
}
