package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	healthcheck "github.com/saborcriollo/ordering/internal/health"
	"github.com/saborcriollo/ordering/internal/stubapi"
	"github.com/saborcriollo/ordering/internal/version"
)

// Run собирает зависимости, поднимает сервер метрик и выполняет демо-сценарий
// оформления заказа: вход, загрузка меню, корзина, оплата, чек.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	baseURL := cfg.APIBaseURL
	var stubSrv *http.Server
	if cfg.UseStub {
		stubSrv = startStubBackend(cfg.StubAddr, logger)
		defer shutdownHTTP(stubSrv, logger)
		baseURL = stubBaseURL(cfg.StubAddr)
		logger.WithField("addr", cfg.StubAddr).Info("embedded backend started")
	}

	deps := NewDependencies(baseURL, cfg, logger)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("backend", healthcheck.NewPingChecker("backend", 3*time.Second, deps.Client.CheckHealth))

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)
	defer shutdownHTTP(metricsSrv, logger)

	if err := deps.Client.CheckHealth(ctx); err != nil {
		logger.WithError(err).Error("backend is not available")
		return err
	}

	return runDemo(ctx, cfg, deps)
}

// startStubBackend поднимает встроенный бэкенд на отдельном адресе.
func startStubBackend(addr string, logger *log.Entry) *http.Server {
	backend := stubapi.NewServer(logger.WithField("component", "stubapi"))
	srv := &http.Server{Addr: addr, Handler: backend.Handler()}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("embedded backend failed")
			os.Exit(1)
		}
	}()
	return srv
}

func stubBaseURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr + "/api"
	}
	return "http://" + addr + "/api"
}

// startMetricsServer запускает HTTP-обработчик /metrics для Prometheus.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/readyz, %s/livez", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
