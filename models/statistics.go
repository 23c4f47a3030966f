package models

type StatisticsOverview struct {
	TotalDecisions   int     `json:"total_decisions"`
	AppliedDecisions int     `json:"applied_decisions"`
	ScalingRate      float64 `json:"scaling_rate"`
	MonitoredPods    int     `json:"monitored_pods"`
}

type ActionCounts struct {
	Decrease int `json:"DECREASE"`
	Maintain int `json:"MAINTAIN"`
	Increase int `json:"INCREASE"`
}

type ConfidencePair struct {
	CPU    float64 `json:"cpu"`
	Memory float64 `json:"memory"`
}

type SystemInfo struct {
	DryRun          bool    `json:"dry_run"`
	CooldownMinutes int     `json:"cooldown_minutes"`
	ScaleFactor     float64 `json:"scale_factor"`
}

type Statistics struct {
	Overview          StatisticsOverview `json:"overview"`
	CPUActions        ActionCounts       `json:"cpu_actions"`
	MemoryActions     ActionCounts       `json:"memory_actions"`
	AverageConfidence ConfidencePair     `json:"average_confidence"`
	System            SystemInfo         `json:"system"`
}
