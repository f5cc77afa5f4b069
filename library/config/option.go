package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

// Options run before the environment is processed, so env values override them.

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

func WithSeedPath(path string) Option {
	return func(c *Config) {
		c.Seed.Path = path
	}
}
