// Package hello serves the greeting endpoint.
package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/greeting-api/internal/platform/logging"
)

// Path is the route the greeting is served on.
const Path = "/api/hello"

// Register wires the hello route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Get a greeting",
		Tags:        []string{"Hello"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	out := &GetOutput{Body: Message{Message: Greeting}}
	applog.LogInfo(ctx, "hello endpoint called", zap.Object("response", out.Body))
	return out, nil
}
