package api_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tannerhall/floorman/internal/api"
)

func TestServerConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg := api.ServerConfigFromEnv()
	assert.Equal(t, api.DefaultServerConfig(), cfg)
}

func TestServerConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := api.ServerConfigFromEnv()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestServerConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := api.ServerConfigFromEnv()
	assert.Equal(t, api.DefaultServerConfig().Port, cfg.Port)
	assert.Equal(t, api.DefaultServerConfig().ShutdownTimeout, cfg.ShutdownTimeout)
}
