package hello

import "go.uber.org/zap/zapcore"

// Greeting is the fixed message returned by the hello endpoint.
const Greeting = "Hello"

// Message is the response payload for the hello endpoint.
type Message struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello"`
}

// MarshalLogObject lets the payload be logged as a structured zap object.
func (m Message) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", m.Message)
	return nil
}

// GetOutput is the response wrapper for GET /api/hello.
type GetOutput struct {
	Body Message
}
