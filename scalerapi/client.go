package scalerapi

import (
	"bytes"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"code.cloudfoundry.org/lager"

	"github.com/shanakama/smart-auto-scaler/helpers"
	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/routes"
	"github.com/shanakama/smart-auto-scaler/ui"
)

// ScalerClient is the gateway to the scaler backend. One method per backend
// operation, nothing else: no retries, no caching, no request timeouts. A
// hung backend call blocks the caller.
type ScalerClient interface {
	CheckHealth() (*models.HealthStatus, error)
	GetConfig() (*models.ScalerConfig, error)
	UpdateConfig(update models.ConfigUpdate) (*models.ScalerConfig, error)
	ListPods() ([]models.Pod, error)
	GetPodDetail(namespace string, podName string) (*models.PodDetail, error)
	ScalePod(namespace string, podName string) (*models.ScalingDecision, error)
	ScaleAll() (*models.ScaleAllResult, error)
	GetDecisions(limit int) ([]models.ScalingDecision, error)
	GetStatistics() (*models.Statistics, error)
	StartAutoscale() (*models.AutoscaleAck, error)
	StopAutoscale() (*models.AutoscaleAck, error)
	GetAutoscaleStatus() (*models.AutoscaleStatus, error)
	GetModelInfo() (*models.ModelInfo, error)
	ResizePod(namespace string, podName string, request models.ResizeRequest, horizontalFallback bool) (*models.ResizeResult, error)
}

type scalerClient struct {
	conf       *Config
	logger     lager.Logger
	httpClient *http.Client
}

func NewScalerClient(conf *Config, logger lager.Logger) (ScalerClient, error) {
	httpClient, err := helpers.CreateHTTPClient(&conf.TLSCerts, conf.SkipSSLValidation)
	if err != nil {
		logger.Error("failed-to-create-http-client", err)
		return nil, err
	}
	if conf.EnableDebugTrace {
		httpClient.Transport = helpers.NewDebugLoggingTransport(httpClient.Transport, logger)
	}
	return &scalerClient{
		conf:       conf,
		logger:     logger.Session("scaler-client"),
		httpClient: httpClient,
	}, nil
}

func (c *scalerClient) CheckHealth() (*models.HealthStatus, error) {
	requestURL, err := c.requestURL(routes.CheckHealthRouteName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("health", http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	health := &models.HealthStatus{}
	err = c.parseResponse(requestURL, resp, health)
	if err != nil {
		return nil, err
	}
	return health, nil
}

func (c *scalerClient) GetConfig() (*models.ScalerConfig, error) {
	requestURL, err := c.requestURL(routes.GetConfigRouteName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("config", http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	conf := &models.ScalerConfig{}
	err = c.parseResponse(requestURL, resp, conf)
	if err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *scalerClient) UpdateConfig(update models.ConfigUpdate) (*models.ScalerConfig, error) {
	requestURL, err := c.requestURL(routes.UpdateConfigRouteName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("config update", http.MethodPost, requestURL, update)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Success bool                 `json:"success"`
		Error   string               `json:"error"`
		Message string               `json:"message"`
		Config  *models.ScalerConfig `json:"config"`
	}
	err = c.parseResponse(requestURL, resp, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, c.rejectionError("config update", requestURL, payload.Error)
	}
	return payload.Config, nil
}

func (c *scalerClient) ListPods() ([]models.Pod, error) {
	requestURL, err := c.requestURL(routes.ListPodsRouteName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("pods", http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Success bool         `json:"success"`
		Error   string       `json:"error"`
		Count   int          `json:"count"`
		Pods    []models.Pod `json:"pods"`
	}
	err = c.parseResponse(requestURL, resp, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, c.rejectionError("pods", requestURL, payload.Error)
	}
	return payload.Pods, nil
}

func (c *scalerClient) GetPodDetail(namespace string, podName string) (*models.PodDetail, error) {
	requestURL, err := c.requestURL(routes.GetPodDetailRouteName, "namespace", namespace, "podname", podName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("pod detail", http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Success   bool                 `json:"success"`
		Error     string               `json:"error"`
		Pod       string               `json:"pod"`
		Metrics   *models.PodMetrics   `json:"metrics"`
		Resources *models.PodResources `json:"resources"`
	}
	err = c.parseResponse(requestURL, resp, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, c.rejectionError("pod detail", requestURL, payload.Error)
	}
	return &models.PodDetail{
		Pod:       payload.Pod,
		Metrics:   payload.Metrics,
		Resources: payload.Resources,
	}, nil
}

func (c *scalerClient) ScalePod(namespace string, podName string) (*models.ScalingDecision, error) {
	requestURL, err := c.requestURL(routes.ScalePodRouteName, "namespace", namespace, "podname", podName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("pod scale", http.MethodPost, requestURL, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Success bool                    `json:"success"`
		Error   string                  `json:"error"`
		Result  *models.ScalingDecision `json:"result"`
	}
	err = c.parseResponse(requestURL, resp, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, c.rejectionError("pod scale", requestURL, payload.Error)
	}
	return payload.Result, nil
}

func (c *scalerClient) ScaleAll() (*models.ScaleAllResult, error) {
	requestURL, err := c.requestURL(routes.ScaleAllRouteName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("scale all", http.MethodPost, requestURL, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Success    bool                    `json:"success"`
		Error      string                  `json:"error"`
		Processed  int                     `json:"processed"`
		Results    []models.ScaleExecution `json:"results"`
		Statistics *models.Statistics      `json:"statistics"`
		Timestamp  string                  `json:"timestamp"`
	}
	err = c.parseResponse(requestURL, resp, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, c.rejectionError("scale all", requestURL, payload.Error)
	}
	return &models.ScaleAllResult{
		Processed:  payload.Processed,
		Results:    payload.Results,
		Statistics: payload.Statistics,
		Timestamp:  payload.Timestamp,
	}, nil
}

func (c *scalerClient) GetDecisions(limit int) ([]models.ScalingDecision, error) {
	requestURL, err := c.requestURL(routes.GetDecisionsRouteName)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		requestURL = fmt.Sprintf("%s?limit=%d", requestURL, limit)
	}
	resp, err := c.sendRequest("decisions", http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Success   bool                     `json:"success"`
		Error     string                   `json:"error"`
		Count     int                      `json:"count"`
		Decisions []models.ScalingDecision `json:"decisions"`
	}
	err = c.parseResponse(requestURL, resp, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, c.rejectionError("decisions", requestURL, payload.Error)
	}
	return payload.Decisions, nil
}

func (c *scalerClient) GetStatistics() (*models.Statistics, error) {
	requestURL, err := c.requestURL(routes.GetStatisticsRouteName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("statistics", http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Success    bool               `json:"success"`
		Error      string             `json:"error"`
		Statistics *models.Statistics `json:"statistics"`
	}
	err = c.parseResponse(requestURL, resp, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, c.rejectionError("statistics", requestURL, payload.Error)
	}
	return payload.Statistics, nil
}

func (c *scalerClient) StartAutoscale() (*models.AutoscaleAck, error) {
	return c.sendAutoscaleCommand("autoscale start", routes.StartAutoscaleRouteName)
}

func (c *scalerClient) StopAutoscale() (*models.AutoscaleAck, error) {
	return c.sendAutoscaleCommand("autoscale stop", routes.StopAutoscaleRouteName)
}

func (c *scalerClient) sendAutoscaleCommand(op string, routeName string) (*models.AutoscaleAck, error) {
	requestURL, err := c.requestURL(routeName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest(op, http.MethodPost, requestURL, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Success  bool   `json:"success"`
		Error    string `json:"error"`
		Message  string `json:"message"`
		Interval int    `json:"interval"`
	}
	err = c.parseResponse(requestURL, resp, &payload)
	if err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, c.rejectionError(op, requestURL, payload.Error)
	}
	return &models.AutoscaleAck{
		Message:  payload.Message,
		Interval: payload.Interval,
	}, nil
}

func (c *scalerClient) GetAutoscaleStatus() (*models.AutoscaleStatus, error) {
	requestURL, err := c.requestURL(routes.GetAutoscaleStatusRouteName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("autoscale status", http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	status := &models.AutoscaleStatus{}
	err = c.parseResponse(requestURL, resp, status)
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (c *scalerClient) GetModelInfo() (*models.ModelInfo, error) {
	requestURL, err := c.requestURL(routes.GetModelInfoRouteName)
	if err != nil {
		return nil, err
	}
	resp, err := c.sendRequest("model info", http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	info := &models.ModelInfo{}
	err = c.parseResponse(requestURL, resp, info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (c *scalerClient) ResizePod(namespace string, podName string, request models.ResizeRequest, horizontalFallback bool) (*models.ResizeResult, error) {
	requestURL, err := c.requestURL(routes.ResizePodRouteName, "namespace", namespace, "podname", podName)
	if err != nil {
		return nil, err
	}
	// the backend defaults the fallback to enabled, so only send the flag
	// to turn it off
	if !horizontalFallback {
		requestURL = fmt.Sprintf("%s?enable_horizontal_fallback=false", requestURL)
	}
	resp, err := c.sendRequest("pod resize", http.MethodPost, requestURL, request)
	if err != nil {
		return nil, err
	}
	result := &models.ResizeResult{}
	err = c.parseResponse(requestURL, resp, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *scalerClient) requestURL(routeName string, pairs ...string) (string, error) {
	path, err := routes.ScalerRoutes().Get(routeName).URLPath(pairs...)
	if err != nil {
		c.logger.Error("failed-to-build-request-path", err, lager.Data{"route": routeName})
		return "", NewAPIError(err.Error())
	}
	return c.conf.URL + path.Path, nil
}

func (c *scalerClient) sendRequest(op string, method string, requestURL string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			c.logger.Error("failed-to-marshal-request-body", err, lager.Data{"url": requestURL})
			return nil, NewAPIError(err.Error())
		}
		reader = bytes.NewReader(bodyJSON)
	}
	req, err := http.NewRequest(method, requestURL, reader)
	if err != nil {
		c.logger.Error("failed-to-create-request", err, lager.Data{"url": requestURL})
		return nil, NewAPIError(err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// correlation id for the backend logs, best effort
	if requestID, err := helpers.GenerateGUID(c.logger); err == nil {
		req.Header.Set("X-Request-Id", requestID)
	}
	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.parseError(op, requestURL, resp)
	}
	return resp, nil
}

func (c *scalerClient) doRequest(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed-to-send-request", err, lager.Data{"url": req.URL.String()})
		if urlErr, ok := err.(*url.Error); ok {
			switch urlErr.Err.(type) {
			case x509.UnknownAuthorityError, x509.HostnameError, x509.CertificateInvalidError:
				return nil, NewAPIError(fmt.Sprintf(ui.InvalidSSLCerts, c.conf.URL))
			}
		}
		return nil, NewAPIError(fmt.Sprintf(ui.FailedToConnect, c.conf.URL, err.Error()))
	}
	return resp, nil
}

// parseError turns a non-2xx response into an APIError, preferring the error
// message in the backend's {"success": false, "error": "..."} body.
func (c *scalerClient) parseError(op string, requestURL string, resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()
	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	err := json.NewDecoder(resp.Body).Decode(&payload)
	if err == nil && payload.Error != "" {
		return NewAPIError(payload.Error)
	}
	return NewAPIError(fmt.Sprintf(ui.RequestFailed, op, requestURL, resp.StatusCode, http.StatusText(resp.StatusCode)))
}

func (c *scalerClient) parseResponse(requestURL string, resp *http.Response, out interface{}) error {
	defer func() { _ = resp.Body.Close() }()
	err := json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		c.logger.Error("failed-to-parse-response", err, lager.Data{"url": requestURL})
		return NewAPIError(fmt.Sprintf(ui.MalformedResponse, requestURL, err.Error()))
	}
	return nil
}

func (c *scalerClient) rejectionError(op string, requestURL string, message string) error {
	if message != "" {
		return NewAPIError(message)
	}
	return NewAPIError(fmt.Sprintf(ui.RequestRejected, op, requestURL))
}
