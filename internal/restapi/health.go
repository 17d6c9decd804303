package restapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// healthTimeout — отдельный короткий таймаут проверки доступности бэкенда.
const healthTimeout = 3 * time.Second

// CheckHealth проверяет доступность бэкенда. Возвращает nil, если бэкенд
// отвечает на /health успешным статусом.
func (c *Client) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend is not reachable at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("backend health check returned %d", resp.StatusCode)
	}
	return nil
}
