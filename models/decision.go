package models

import (
	"encoding/json"
	"strings"
)

type ResourceAction string

const (
	ActionDecrease ResourceAction = "DECREASE"
	ActionMaintain ResourceAction = "MAINTAIN"
	ActionIncrease ResourceAction = "INCREASE"
)

// Confidence carries the two encodings the backend has used for decision
// confidence: a single number in older records, a per-resource {cpu, memory}
// object in newer ones.
type Confidence struct {
	Overall *float64
	CPU     *float64
	Memory  *float64
}

func (c *Confidence) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		c.Overall = &number
		return nil
	}
	var pair struct {
		CPU    *float64 `json:"cpu"`
		Memory *float64 `json:"memory"`
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	c.CPU = pair.CPU
	c.Memory = pair.Memory
	return nil
}

func (c Confidence) MarshalJSON() ([]byte, error) {
	if c.Overall != nil {
		return json.Marshal(*c.Overall)
	}
	if c.CPU == nil && c.Memory == nil {
		return []byte("null"), nil
	}
	pair := struct {
		CPU    *float64 `json:"cpu,omitempty"`
		Memory *float64 `json:"memory,omitempty"`
	}{c.CPU, c.Memory}
	return json.Marshal(pair)
}

type ResourcePair struct {
	CPUCores float64 `json:"cpu_cores"`
	MemoryMB float64 `json:"memory_mb"`
}

type DecisionMetrics struct {
	CPUUsage      float64 `json:"cpu_usage"`
	MemoryUsageMB float64 `json:"memory_usage_mb"`
	CPULimit      float64 `json:"cpu_limit"`
	MemoryLimitMB float64 `json:"memory_limit_mb"`
}

type Predictions struct {
	CPUAction         ResourceAction `json:"cpu_action"`
	MemoryAction      ResourceAction `json:"memory_action"`
	CPUActionIndex    int            `json:"cpu_action_index"`
	MemoryActionIndex int            `json:"memory_action_index"`
}

type ResourceChange struct {
	Current       float64        `json:"current"`
	New           float64        `json:"new"`
	ChangePercent float64        `json:"change_percent"`
	Action        ResourceAction `json:"action"`
}

type ResourceChanges struct {
	CPU    *ResourceChange `json:"cpu,omitempty"`
	Memory *ResourceChange `json:"memory,omitempty"`
}

// ScalingDecision is the wire form of one scaling decision. Older backends
// emit a single action with a numeric confidence and explicit current and
// proposed resources; newer ones emit per-resource actions with metric and
// change breakdowns. Every shape-specific field is optional here and
// Normalize reconciles them once, at ingestion.
type ScalingDecision struct {
	PodName   string `json:"pod_name"`
	Namespace string `json:"namespace,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`

	Action            *ResourceAction `json:"action,omitempty"`
	Confidence        *Confidence     `json:"confidence,omitempty"`
	CurrentResources  *ResourcePair   `json:"current_resources,omitempty"`
	ProposedResources *ResourcePair   `json:"proposed_resources,omitempty"`
	Applied           *bool           `json:"applied,omitempty"`
	Reason            string          `json:"reason,omitempty"`

	CPUAction       *ResourceAction  `json:"cpu_action,omitempty"`
	MemoryAction    *ResourceAction  `json:"memory_action,omitempty"`
	Predictions     *Predictions     `json:"predictions,omitempty"`
	CurrentMetrics  *DecisionMetrics `json:"current_metrics,omitempty"`
	ResourceChanges *ResourceChanges `json:"resource_changes,omitempty"`
	CanScale        *bool            `json:"can_scale,omitempty"`
}

// DecisionSummary is the canonical display-ready record every view consumes.
type DecisionSummary struct {
	PodName             string
	Namespace           string
	Timestamp           string
	Action              ResourceAction
	Confidence          float64
	CPUConfidence       float64
	MemoryConfidence    float64
	CurrentCPUCores     float64
	ProposedCPUCores    float64
	CurrentMemoryMB     float64
	ProposedMemoryMB    float64
	CPUChangePercent    float64
	MemoryChangePercent float64
	HasCPUChanges       bool
	HasMemoryChanges    bool
	Applied             bool
	Reason              string
}

func (d *ScalingDecision) Normalize() DecisionSummary {
	s := DecisionSummary{
		PodName:   d.PodName,
		Namespace: d.Namespace,
		Timestamp: d.Timestamp,
		Action:    d.normalizeAction(),
		Applied:   d.normalizeApplied(),
		Reason:    d.normalizeReason(),
	}
	s.Confidence, s.CPUConfidence, s.MemoryConfidence = d.normalizeConfidence()
	s.CurrentCPUCores, s.ProposedCPUCores = d.cpuCores()
	s.CurrentMemoryMB, s.ProposedMemoryMB = d.memoryMB()
	if d.ResourceChanges != nil && d.ResourceChanges.CPU != nil {
		s.CPUChangePercent = d.ResourceChanges.CPU.ChangePercent
		s.HasCPUChanges = s.CPUChangePercent != 0
	}
	if d.ResourceChanges != nil && d.ResourceChanges.Memory != nil {
		s.MemoryChangePercent = d.ResourceChanges.Memory.ChangePercent
		s.HasMemoryChanges = s.MemoryChangePercent != 0
	}
	return s
}

func NormalizeDecisions(decisions []ScalingDecision) []DecisionSummary {
	summaries := make([]DecisionSummary, 0, len(decisions))
	for i := range decisions {
		summaries = append(summaries, decisions[i].Normalize())
	}
	return summaries
}

func (d *ScalingDecision) cpuResourceAction() *ResourceAction {
	if d.CPUAction != nil {
		return d.CPUAction
	}
	if d.Predictions != nil && d.Predictions.CPUAction != "" {
		action := d.Predictions.CPUAction
		return &action
	}
	return nil
}

func (d *ScalingDecision) memoryResourceAction() *ResourceAction {
	if d.MemoryAction != nil {
		return d.MemoryAction
	}
	if d.Predictions != nil && d.Predictions.MemoryAction != "" {
		action := d.Predictions.MemoryAction
		return &action
	}
	return nil
}

// The explicit action of a legacy record wins. When both per-resource
// actions are present the more aggressive one is reported: any INCREASE
// beats any DECREASE beats MAINTAIN.
func (d *ScalingDecision) normalizeAction() ResourceAction {
	if d.Action != nil {
		return *d.Action
	}
	cpu := d.cpuResourceAction()
	memory := d.memoryResourceAction()
	if cpu != nil && memory != nil {
		switch {
		case *cpu == ActionIncrease || *memory == ActionIncrease:
			return ActionIncrease
		case *cpu == ActionDecrease || *memory == ActionDecrease:
			return ActionDecrease
		}
	}
	return ActionMaintain
}

func (d *ScalingDecision) normalizeConfidence() (overall, cpu, memory float64) {
	if d.Confidence == nil {
		return 0, 0, 0
	}
	if d.Confidence.Overall != nil {
		v := *d.Confidence.Overall
		return v, v, v
	}
	if d.Confidence.CPU != nil {
		cpu = *d.Confidence.CPU
	}
	if d.Confidence.Memory != nil {
		memory = *d.Confidence.Memory
	}
	return (cpu + memory) / 2, cpu, memory
}

func (d *ScalingDecision) cpuCores() (current, proposed float64) {
	switch {
	case d.CurrentResources != nil:
		current = d.CurrentResources.CPUCores
	case d.CurrentMetrics != nil:
		current = d.CurrentMetrics.CPUUsage
	}
	switch {
	case d.ProposedResources != nil:
		proposed = d.ProposedResources.CPUCores
	case d.ResourceChanges != nil && d.ResourceChanges.CPU != nil:
		proposed = d.ResourceChanges.CPU.New
	default:
		proposed = current
	}
	return current, proposed
}

func (d *ScalingDecision) memoryMB() (current, proposed float64) {
	switch {
	case d.CurrentResources != nil:
		current = d.CurrentResources.MemoryMB
	case d.CurrentMetrics != nil:
		current = d.CurrentMetrics.MemoryUsageMB
	}
	switch {
	case d.ProposedResources != nil:
		proposed = d.ProposedResources.MemoryMB
	case d.ResourceChanges != nil && d.ResourceChanges.Memory != nil:
		proposed = d.ResourceChanges.Memory.New
	default:
		proposed = current
	}
	return current, proposed
}

// An absent can_scale means the decision was applied.
func (d *ScalingDecision) normalizeApplied() bool {
	if d.Applied != nil {
		return *d.Applied
	}
	return d.CanScale == nil || *d.CanScale
}

func (d *ScalingDecision) normalizeReason() string {
	if d.Reason != "" {
		return d.Reason
	}
	if d.CanScale != nil && !*d.CanScale {
		return "Scaling not allowed"
	}
	var parts []string
	if action := d.cpuResourceAction(); action != nil && *action != ActionMaintain {
		parts = append(parts, "CPU "+string(*action))
	}
	if action := d.memoryResourceAction(); action != nil && *action != ActionMaintain {
		parts = append(parts, "Memory "+string(*action))
	}
	if len(parts) == 0 {
		return "No changes needed"
	}
	return strings.Join(parts, ", ")
}
