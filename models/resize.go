package models

// ResizeRequest addresses containers by name. Resource values are Kubernetes
// quantity strings ("250m", "128Mi"), never numbers.
type ResizeRequest struct {
	Containers map[string]ContainerResourceSpec `json:"containers"`
}

type ResizeResult struct {
	Message       string                 `json:"message"`
	Pod           string                 `json:"pod"`
	Namespace     string                 `json:"namespace"`
	ScalingMethod string                 `json:"scaling_method"`
	Details       map[string]interface{} `json:"details,omitempty"`
	Timestamp     string                 `json:"timestamp"`
}
