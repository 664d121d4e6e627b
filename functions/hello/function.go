// Package hello serves the greeting as a Google Cloud Function.
package hello

import (
	"encoding/json"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Greeting matches the payload of the main service's /api/hello route.
const Greeting = "Hello"

// logger is built once per function instance; the framework owns the process.
var logger = newLogger()

func init() {
	functions.HTTP("Hello", helloHandler)
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "severity"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Response is the function response.
type Response struct {
	Message string `json:"message"`
}

// MarshalLogObject logs the response the same way the main service does.
func (r Response) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", r.Message)
	return nil
}

func helloHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	resp := Response{Message: Greeting}
	logger.Info("hello function called", zap.Object("response", resp))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
