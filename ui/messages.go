package ui

const (
	OK     = "OK"
	FAILED = "FAILED"

	InvalidAPIEndpoint = "Invalid API endpoint: %s"
	InvalidSSLCerts    = "Invalid SSL Cert for %s"
	FailedToConnect    = "Failed to connect to %s: %s"
	MalformedResponse  = "Failed to parse the response from %s: %s"
	RequestFailed      = "Error requesting %s: %s [%d] %s"
	RequestRejected    = "The scaler API rejected the %s request to %s"

	NoEndpoint       = "No API endpoint set. Use 'scalerctl api URL' to set an endpoint"
	APIEndpoint      = "API endpoint: %s"
	SetAPIEndpoint   = "Setting API endpoint to %s..."
	UnsetAPIEndpoint = "Unsetting API endpoint..."

	NotLoggedIn        = "Not logged in. Use 'scalerctl login' to log in"
	LoggedInAs         = "Logged in as %s"
	LoggedOut          = "Logged out"
	InvalidCredentials = "Credentials were rejected, please try again"

	ConfigSaved = "Configuration saved successfully"

	WaitingForAPI = "Waiting for %s to report healthy..."
	APIHealthy    = "%s is healthy"
)
