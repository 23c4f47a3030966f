package models

// ModelInfo describes the DQN behind the backend. Actions maps action index
// (as a JSON object key) to action name.
type ModelInfo struct {
	ModelType     string                    `json:"model_type"`
	ModelPath     string                    `json:"model_path"`
	StateDim      int                       `json:"state_dim"`
	ActionDim     int                       `json:"action_dim"`
	Actions       map[string]ResourceAction `json:"actions"`
	StateFeatures []string                  `json:"state_features"`
}
