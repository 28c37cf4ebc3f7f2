package config_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menengai/edge/pkg/config"
)

type defaultsConfig struct {
	Root     string        `env:"CFG_TEST_DEFAULT_ROOT" envDefault:"menengai.cloud"`
	Timeout  time.Duration `env:"CFG_TEST_DEFAULT_TIMEOUT" envDefault:"3s"`
	Reserved []string      `env:"CFG_TEST_DEFAULT_RESERVED" envSeparator:"," envDefault:"www,app"`
}

type overrideConfig struct {
	Root string `env:"CFG_TEST_OVERRIDE_ROOT" envDefault:"menengai.cloud"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	URL string `env:"CFG_TEST_REQUIRED_URL,required"`
}

type concurrentConfig struct {
	Value int `env:"CFG_TEST_CONCURRENT" envDefault:"7"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "menengai.cloud", cfg.Root)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"www", "app"}, cfg.Reserved)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("CFG_TEST_OVERRIDE_ROOT", "example.test")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "example.test", cfg.Root)
}

func TestLoadIsCachedPerType(t *testing.T) {
	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadRequired(t *testing.T) {
	var cfg requiredConfig

	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadNilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
}

func TestLoadConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]int, 16)

	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg concurrentConfig
			if err := config.Load(&cfg); err == nil {
				results[i] = cfg.Value
			}
		}()
	}
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, 7, v)
	}
}
