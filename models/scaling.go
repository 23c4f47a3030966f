package models

type ScaleStatus string

const (
	ScaleStatusSuccess        ScaleStatus = "success"
	ScaleStatusDryRun         ScaleStatus = "dry_run"
	ScaleStatusSkipped        ScaleStatus = "skipped"
	ScaleStatusFailed         ScaleStatus = "failed"
	ScaleStatusNoActionNeeded ScaleStatus = "no_action_needed"
	ScaleStatusError          ScaleStatus = "error"
)

type ScaledResources struct {
	CPU    float64 `json:"cpu"`
	Memory float64 `json:"memory"`
}

type ActionPair struct {
	CPU    ResourceAction `json:"cpu"`
	Memory ResourceAction `json:"memory"`
}

// ScaleExecution is the per-pod outcome of a scale run. Which fields are set
// depends on the status: dry_run carries the predicted actions and changes,
// success carries the resource levels before and after, skipped carries the
// reason, error carries the error text.
type ScaleExecution struct {
	PodName           string           `json:"pod_name"`
	Status            ScaleStatus      `json:"status"`
	Message           string           `json:"message,omitempty"`
	Reason            string           `json:"reason,omitempty"`
	Error             string           `json:"error,omitempty"`
	CPUAction         ResourceAction   `json:"cpu_action,omitempty"`
	MemoryAction      ResourceAction   `json:"memory_action,omitempty"`
	ResourceChanges   *ResourceChanges `json:"resource_changes,omitempty"`
	PreviousResources *ScaledResources `json:"previous_resources,omitempty"`
	NewResources      *ScaledResources `json:"new_resources,omitempty"`
	Actions           *ActionPair      `json:"actions,omitempty"`
}

type ScaleAllResult struct {
	Processed  int              `json:"processed"`
	Results    []ScaleExecution `json:"results"`
	Statistics *Statistics      `json:"statistics,omitempty"`
	Timestamp  string           `json:"timestamp"`
}
