package app

import (
	"os"
	"strconv"
	"time"

	"github.com/saborcriollo/ordering/internal/restapi"
)

// Config описывает настройки запуска приложения.
type Config struct {
	// APIBaseURL — адрес REST-бэкенда. При включённом стабе игнорируется:
	// приложение ходит во встроенный бэкенд.
	APIBaseURL string
	// APITimeout — общий таймаут запросов к бэкенду.
	APITimeout time.Duration
	// MetricsAddr — адрес HTTP-сервера метрик и health-проверок.
	MetricsAddr string
	// UseStub включает встроенный бэкенд вместо внешнего.
	UseStub bool
	// StubAddr — адрес, на котором поднимается встроенный бэкенд.
	StubAddr string
	// DemoEmail и DemoPassword — учётные данные демо-сценария.
	DemoEmail    string
	DemoPassword string
}

// DefaultConfig возвращает конфигурацию по умолчанию: встроенный бэкенд
// на порту реального и метрики на :9090.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:   restapi.DefaultBaseURL,
		APITimeout:   restapi.DefaultTimeout,
		MetricsAddr:  ":9090",
		UseStub:      true,
		StubAddr:     ":8089",
		DemoEmail:    "demo@saborcriollo.pe",
		DemoPassword: "demo-password",
	}
}

// ConfigFromEnv читает конфигурацию из окружения поверх значений по
// умолчанию. Переменные: ORDERING_API_URL, ORDERING_API_TIMEOUT,
// ORDERING_METRICS_ADDR, ORDERING_USE_STUB, ORDERING_STUB_ADDR.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ORDERING_API_URL"); v != "" {
		cfg.APIBaseURL = v
		cfg.UseStub = false
	}
	if v := os.Getenv("ORDERING_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.APITimeout = d
		}
	}
	if v := os.Getenv("ORDERING_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("ORDERING_USE_STUB"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UseStub = b
		}
	}
	if v := os.Getenv("ORDERING_STUB_ADDR"); v != "" {
		cfg.StubAddr = v
	}
	if v := os.Getenv("ORDERING_DEMO_EMAIL"); v != "" {
		cfg.DemoEmail = v
	}
	if v := os.Getenv("ORDERING_DEMO_PASSWORD"); v != "" {
		cfg.DemoPassword = v
	}
	return cfg
}
