package catalog

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/saborcriollo/ordering/internal/domain"
)

// RetryConfig задаёт параметры повторов при загрузке меню.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig возвращает конфигурацию повторов по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
	}
}

// RetryingMenuService оборачивает MenuService повторами с экспоненциальной
// задержкой. Сетевые сбои меню временные, а загрузка каталога — первый шаг
// работы приложения, без неё нечего показывать.
type RetryingMenuService struct {
	inner  domain.MenuService
	config RetryConfig
	logger *log.Entry
}

// NewRetryingMenuService создаёт декоратор повторов над сервисом меню.
func NewRetryingMenuService(inner domain.MenuService, config RetryConfig, logger *log.Entry) *RetryingMenuService {
	if logger == nil {
		logger = log.New().WithField("component", "menu-retry")
	}
	return &RetryingMenuService{inner: inner, config: config, logger: logger}
}

// FetchMenu загружает меню, повторяя временные сбои.
func (r *RetryingMenuService) FetchMenu(ctx context.Context) ([]domain.CatalogItem, error) {
	return r.fetch(ctx, "FetchMenu", r.inner.FetchMenu)
}

// FetchFeatured загружает рекомендуемые позиции, повторяя временные сбои.
func (r *RetryingMenuService) FetchFeatured(ctx context.Context) ([]domain.CatalogItem, error) {
	return r.fetch(ctx, "FetchFeatured", r.inner.FetchFeatured)
}

func (r *RetryingMenuService) fetch(ctx context.Context, operation string, fn func(context.Context) ([]domain.CatalogItem, error)) ([]domain.CatalogItem, error) {
	var lastErr error
	delay := r.config.InitialDelay

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		items, err := fn(ctx)
		if err == nil {
			if attempt > 1 {
				r.logger.WithFields(log.Fields{
					"operation": operation,
					"attempt":   attempt,
				}).Info("menu request succeeded after retry")
			}
			return items, nil
		}

		lastErr = err
		if !shouldRetry(err) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts {
			break
		}

		r.logger.WithError(err).WithFields(log.Fields{
			"operation": operation,
			"attempt":   attempt,
			"delay":     delay,
		}).Warn("menu request failed, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * r.config.BackoffFactor)
		if delay > r.config.MaxDelay {
			delay = r.config.MaxDelay
		}
	}

	r.logger.WithError(lastErr).WithFields(log.Fields{
		"operation":    operation,
		"max_attempts": r.config.MaxAttempts,
	}).Error("menu request failed after all retry attempts")
	return nil, lastErr
}

// shouldRetry определяет, временная ли ошибка. Отклонённый токен повторами
// не лечится.
func shouldRetry(err error) bool {
	if errors.Is(err, domain.ErrUnauthorized) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

var _ domain.MenuService = (*RetryingMenuService)(nil)
