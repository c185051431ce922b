package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attrvalid/pkg/config"
)

type serviceConfig struct {
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	IgnoreProps    []string      `env:"VALIDATOR_IGNORE_PROPERTIES" envSeparator:","`
	RegexCacheSize int           `env:"VALIDATOR_REGEX_CACHE_SIZE" envDefault:"128"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Token string `env:"TOKEN,required"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		var cfg serviceConfig
		require.NoError(t, config.Parse(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 128, cfg.RegexCacheSize)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Empty(t, cfg.IgnoreProps)
	})

	t.Run("explicit environment", func(t *testing.T) {
		t.Parallel()

		var cfg serviceConfig
		require.NoError(t, config.Parse(&cfg, config.WithEnvironment(map[string]string{
			"LOG_LEVEL":                   "debug",
			"VALIDATOR_IGNORE_PROPERTIES": "label,hint",
			"VALIDATOR_REGEX_CACHE_SIZE":  "16",
		})))
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, []string{"label", "hint"}, cfg.IgnoreProps)
		assert.Equal(t, 16, cfg.RegexCacheSize)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()

		var cfg serviceConfig
		require.NoError(t, config.Parse(&cfg,
			config.WithPrefix("APP_"),
			config.WithEnvironment(map[string]string{"APP_LOG_LEVEL": "warn", "LOG_LEVEL": "error"}),
		))
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("env file values lose to the environment", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nVALIDATOR_REGEX_CACHE_SIZE=8\n"), 0o600))

		var cfg serviceConfig
		require.NoError(t, config.Parse(&cfg,
			config.WithEnvFiles(path),
			config.WithEnvironment(map[string]string{"LOG_LEVEL": "error"}),
		))
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, 8, cfg.RegexCacheSize)
	})

	t.Run("missing env file", func(t *testing.T) {
		t.Parallel()

		var cfg serviceConfig
		err := config.Parse(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "nope.env")))
		assert.ErrorIs(t, err, config.ErrReadEnvFile)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		var cfg serviceConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{"VALIDATOR_REGEX_CACHE_SIZE": "many"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("required value", func(t *testing.T) {
		t.Parallel()

		var cfg requiredConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, config.Parse[serviceConfig](nil), config.ErrNilPointer)
	})
}

type cachedConfig struct {
	Value string `env:"ATTRVALID_CACHED_VALUE" envDefault:"first"`
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("ATTRVALID_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("ATTRVALID_CACHED_VALUE", "second")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var again cachedConfig
			assert.NoError(t, config.Load(&again))
			assert.Equal(t, "first", again.Value)
		}()
	}
	wg.Wait()
}

type retryConfig struct {
	Value string `env:"ATTRVALID_RETRY_VALUE,required"`
}

func TestLoad_RetriesAfterFailure(t *testing.T) {
	var cfg retryConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("ATTRVALID_RETRY_VALUE", "set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "set", cfg.Value)

	assert.Panics(t, func() { config.MustLoad[requiredConfig](nil) })
}
