package data

import "time"

const (
	Greeting      = "Hi Harsha"
	StatusHealthy = "healthy"

	// TimestampFormat is ISO-8601 in UTC with millisecond precision.
	TimestampFormat = "2006-01-02T15:04:05.000Z"
)

// RootResponse is the body served on the root endpoint.
type RootResponse struct {
	Message     string `json:"message" example:"Hi Harsha"`
	Version     string `json:"version" example:"v1.0"`
	Environment string `json:"environment" example:"development"`
	Timestamp   string `json:"timestamp" example:"2024-01-01T12:00:00.000Z"`
}

// HealthResponse is the body served on the health endpoint.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Version string `json:"version" example:"v1.0"`
}

func NewRootResponse(version, env string, now time.Time) RootResponse {
	return RootResponse{
		Message:     Greeting,
		Version:     version,
		Environment: env,
		Timestamp:   FormatTimestamp(now),
	}
}

func NewHealthResponse(version string) HealthResponse {
	return HealthResponse{
		Status:  StatusHealthy,
		Version: version,
	}
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}
