package main

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type envKey struct{}

// localEnv keeps everything the program needs in a single place.
type localEnv struct {
	Cfg   *Config
	Log   *zap.Logger
	start time.Time
}

func envFromContext(ctx context.Context) *localEnv {
	if env, ok := ctx.Value(envKey{}).(*localEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &localEnv{Log: zap.NewNop(), start: time.Now()})
}

func (e *localEnv) uptime() time.Duration {
	return time.Since(e.start)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
