package obs

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Init builds the process logger. Development mode writes human-readable
// console output; otherwise JSON lines are written to stderr.
func Init(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if strings.EqualFold(env, "local") || strings.EqualFold(env, "dev") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("init logger: parse level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger = l
	return l, nil
}

// L returns the process logger. It is a no-op logger until Init succeeds.
func L() *zap.Logger {
	return logger
}

// WithRequest returns the logger annotated with the request id carried by ctx.
func WithRequest(ctx context.Context) *zap.Logger {
	if reqID := RequestID(ctx); reqID != "" {
		return logger.With(zap.String("req_id", reqID))
	}
	return logger
}
