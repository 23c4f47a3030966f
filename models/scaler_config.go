package models

type ScalerConfig struct {
	ModelPath           string            `json:"model_path"`
	StateDim            int               `json:"state_dim"`
	ActionDim           int               `json:"action_dim"`
	HistoryWindow       int               `json:"history_window"`
	MinCPU              float64           `json:"min_cpu"`
	MaxCPU              float64           `json:"max_cpu"`
	MinMemory           float64           `json:"min_memory"`
	MaxMemory           float64           `json:"max_memory"`
	ScaleFactor         float64           `json:"scale_factor"`
	DryRun              bool              `json:"dry_run"`
	InCluster           bool              `json:"in_cluster"`
	Namespaces          []string          `json:"namespaces"`
	AutoScaleEnabled    bool              `json:"auto_scale_enabled"`
	AutoScaleInterval   int               `json:"auto_scale_interval"`
	ScalingCooldown     int               `json:"scaling_cooldown"`
	ExcludedDeployments []string          `json:"excluded_deployments,omitempty"`
	ExcludedLabels      map[string]string `json:"excluded_labels,omitempty"`
}

// DefaultScalerConfig mirrors the configuration the backend starts with.
func DefaultScalerConfig() ScalerConfig {
	return ScalerConfig{
		ModelPath:         "final-models/dqn_model.pth",
		StateDim:          8,
		ActionDim:         3,
		HistoryWindow:     5,
		MinCPU:            0.1,
		MaxCPU:            8.0,
		MinMemory:         20,
		MaxMemory:         16384,
		ScaleFactor:       0.2,
		DryRun:            true,
		Namespaces:        []string{"default"},
		AutoScaleEnabled:  true,
		AutoScaleInterval: 30,
		ScalingCooldown:   30,
	}
}

// ConfigUpdate is the editable subset of the backend configuration. A save
// always sends every field, so none of them is omitempty.
type ConfigUpdate struct {
	DryRun            bool     `json:"dry_run"`
	ScaleFactor       float64  `json:"scale_factor"`
	AutoScaleEnabled  bool     `json:"auto_scale_enabled"`
	AutoScaleInterval int      `json:"auto_scale_interval"`
	ScalingCooldown   int      `json:"scaling_cooldown"`
	Namespaces        []string `json:"namespaces"`
}
