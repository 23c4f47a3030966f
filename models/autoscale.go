package models

type AutoscaleStatus struct {
	Enabled         bool `json:"enabled"`
	Running         bool `json:"running"`
	IntervalSeconds int  `json:"interval_seconds"`
	ThreadAlive     bool `json:"thread_alive"`
}

type AutoscaleAck struct {
	Message  string `json:"message"`
	Interval int    `json:"interval,omitempty"`
}
