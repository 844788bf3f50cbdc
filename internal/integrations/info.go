package integrations

import "time"

// Info is the liveness payload of the service.
type Info struct {
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// NewInfo builds the info payload for the given environment at time now.
func NewInfo(environment string, now time.Time) Info {
	if environment == "" {
		environment = "development"
	}
	return Info{
		Message:     "Hello from Azure!",
		Timestamp:   now,
		Environment: environment,
	}
}
