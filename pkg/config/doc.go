// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		HTTP     httpserver.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load parses each configuration type once per process and caches the
// result. Parse does the same work without caching and accepts options:
// WithEnvFiles reads extra .env files, WithEnvironment replaces the process
// environment (handy in tests) and WithPrefix namespaces variable names.
package config
