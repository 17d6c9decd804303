package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saborcriollo/ordering/internal/restapi"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, restapi.DefaultBaseURL, cfg.APIBaseURL)
	assert.Equal(t, restapi.DefaultTimeout, cfg.APITimeout)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.True(t, cfg.UseStub)
	assert.Equal(t, ":8089", cfg.StubAddr)
	assert.NotEmpty(t, cfg.DemoEmail)
	assert.NotEmpty(t, cfg.DemoPassword)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("ORDERING_API_URL", "http://backend.internal:8089/api")
	t.Setenv("ORDERING_API_TIMEOUT", "5s")
	t.Setenv("ORDERING_METRICS_ADDR", ":9100")

	cfg := ConfigFromEnv()

	assert.Equal(t, "http://backend.internal:8089/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	// Явный адрес внешнего бэкенда выключает встроенный стаб.
	assert.False(t, cfg.UseStub)
}

func TestConfigFromEnv_StubForcedOn(t *testing.T) {
	t.Setenv("ORDERING_API_URL", "http://backend.internal:8089/api")
	t.Setenv("ORDERING_USE_STUB", "true")
	t.Setenv("ORDERING_STUB_ADDR", ":18089")

	cfg := ConfigFromEnv()

	assert.True(t, cfg.UseStub)
	assert.Equal(t, ":18089", cfg.StubAddr)
}

func TestConfigFromEnv_BadTimeoutIgnored(t *testing.T) {
	t.Setenv("ORDERING_API_TIMEOUT", "not-a-duration")

	cfg := ConfigFromEnv()

	assert.Equal(t, restapi.DefaultTimeout, cfg.APITimeout)
}

func TestStubBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8089/api", stubBaseURL(":8089"))
	assert.Equal(t, "http://127.0.0.1:8089/api", stubBaseURL("127.0.0.1:8089"))
}
