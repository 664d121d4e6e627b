package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Options controls logger construction.
type Options struct {
	// Level is a zap level name such as "debug", "info" or "warn". Empty means info.
	Level string
	// Development switches to a human-readable console encoder.
	Development bool
	// Output receives encoded entries. Nil means stdout.
	Output zapcore.WriteSyncer
}

// New builds the process logger. It is called once at startup and the result
// is passed to the router; there is no package-level logger.
func New(opts Options) (*zap.Logger, error) {
	levelName := strings.TrimSpace(opts.Level)
	if levelName == "" {
		levelName = "info"
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
	}

	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stdout)
	}

	encCfg := encoderConfig()
	var enc zapcore.Encoder
	if opts.Development {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	zapOpts := []zap.Option{zap.AddCaller(), zap.ErrorOutput(out)}
	if opts.Development {
		zapOpts = append(zapOpts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	} else {
		zapOpts = append(zapOpts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	core := zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(level))
	return zap.New(core, zapOpts...), nil
}

// encoderConfig uses the field names Cloud Logging recognizes.
func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = encodeTimeMicros
	cfg.LevelKey = "severity"
	cfg.EncodeLevel = encodeSeverity
	cfg.MessageKey = "message"
	cfg.CallerKey = "caller"
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	return cfg
}

// encodeTimeMicros formats timestamps as RFC 3339 with fixed microsecond precision.
func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(RFC3339Micros))
}

// encodeSeverity maps zap levels to Cloud Logging severity names.
func encodeSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var severity string
	switch level {
	case zapcore.DebugLevel:
		severity = "DEBUG"
	case zapcore.InfoLevel:
		severity = "INFO"
	case zapcore.WarnLevel:
		severity = "WARNING"
	case zapcore.ErrorLevel:
		severity = "ERROR"
	case zapcore.DPanicLevel:
		severity = "CRITICAL"
	case zapcore.PanicLevel:
		severity = "ALERT"
	case zapcore.FatalLevel:
		severity = "EMERGENCY"
	default:
		severity = "DEFAULT"
	}
	enc.AppendString(severity)
}
