package models

type ContainerResourceSpec struct {
	Requests map[string]string `json:"requests,omitempty"`
	Limits   map[string]string `json:"limits,omitempty"`
}

type PodOwner struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	UID  string `json:"uid,omitempty"`
}

// Pod is one monitored pod as the backend lists it. The backend only lists
// running pods, so there is no phase field.
type Pod struct {
	Name      string            `json:"name"`
	Namespace string            `json:"namespace"`
	UID       string            `json:"uid,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
	Owner     *PodOwner         `json:"owner"`
}

type PodMetrics struct {
	CPUUsageCores float64 `json:"cpu_usage_cores"`
	MemoryUsageMB float64 `json:"memory_usage_mb"`
}

type PodResources struct {
	CPURequestsCores float64 `json:"cpu_requests_cores"`
	MemoryRequestsMB float64 `json:"memory_requests_mb"`
}

// PodDetail is one pod's live usage and requested resources. Metrics is nil
// when the metrics API has no sample for the pod.
type PodDetail struct {
	Pod       string        `json:"pod"`
	Metrics   *PodMetrics   `json:"metrics"`
	Resources *PodResources `json:"resources"`
}
