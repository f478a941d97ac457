package instance

import "github.com/bahanajar/sitta-backend/pkg/env"

const defaultID = "local"

// GetID returns the identifier of the running process as set by the host
// platform, or "local".
func GetID() string {
	if id := env.First("DYNO", "HOSTNAME"); id != "" {
		return id
	}
	return defaultID
}
