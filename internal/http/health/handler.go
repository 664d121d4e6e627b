// Package health serves the liveness endpoint.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Path is the route the health check is served on.
const Path = "/health"

// StatusHealthy is the only status the endpoint reports.
const StatusHealthy = "healthy"

// Status is the payload for the health endpoint.
type Status struct {
	Status string `json:"status" doc:"Service status" example:"healthy"`
}

// Output is the response wrapper for GET /health.
type Output struct {
	Body Status
}

// Register wires the health route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, func(_ context.Context, _ *struct{}) (*Output, error) {
		return &Output{Body: Status{Status: StatusHealthy}}, nil
	})
}
