package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GATEWAY_BASE_URL", "http://gateway.local/api/")
	t.Setenv("GATEWAY_PATH_PREFIX", "admin/")
	t.Setenv("REQUEST_TIMEOUT_MS", "2500")
	t.Setenv("WATER_CHECK_ENABLED", "true")
	t.Setenv("GATEWAY_RPS", "5.5")

	c := LoadConfig()
	assert.Equal(t, "http://gateway.local/api", c.GatewayBaseURL)
	assert.Equal(t, "/admin", c.GatewayPathPrefix)
	assert.Equal(t, 2500*time.Millisecond, c.RequestTimeout)
	assert.True(t, c.WaterCheckEnabled)
	assert.InDelta(t, 5.5, c.GatewayRPS, 0.0001)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GATEWAY_PATH_PREFIX", "")
	c := LoadConfig()
	assert.Equal(t, "/internal", c.GatewayPathPrefix)
	assert.Equal(t, -5, c.TimezoneOffsetHours)
	assert.Equal(t, 10, c.DefaultPageSize)
	assert.Equal(t, 2, c.ReferenceRetries)
	assert.Equal(t, time.Second, c.ReferenceBackoff)
	assert.False(t, c.WaterCheckEnabled)
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "http://x/internal/program/7", BuildURL("http://x/", "/internal", "program/", "7"))
	assert.Equal(t, "http://x/program", BuildURL("http://x", "", "program"))
}

func TestAddGatewayAuth(t *testing.T) {
	cfg := Config{GatewayToken: "abc"}
	h := AddGatewayAuth(cfg, nil)
	assert.Equal(t, "Bearer abc", h["Authorization"])

	h = AddGatewayAuth(cfg, map[string]string{"Authorization": "Bearer user"})
	assert.Equal(t, "Bearer user", h["Authorization"])

	h = AddGatewayAuth(Config{}, nil)
	assert.NotContains(t, h, "Authorization")
}
