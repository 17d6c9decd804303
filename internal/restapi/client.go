package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/saborcriollo/ordering/internal/domain"
)

const (
	// DefaultBaseURL — адрес бэкенда по умолчанию.
	DefaultBaseURL = "http://localhost:8089/api"
	// DefaultTimeout — общий таймаут HTTP-запросов к бэкенду.
	DefaultTimeout = 20 * time.Second
)

// StatusError возвращается, когда бэкенд ответил кодом ошибки.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Body)
}

// UserMessage возвращает отображаемое пользователю описание ошибки.
func (e *StatusError) UserMessage() string {
	switch e.Status {
	case http.StatusUnauthorized:
		return "Incorrect credentials. Check your email and password."
	case http.StatusForbidden:
		return "You do not have permission to perform this action."
	case http.StatusNotFound:
		return "Resource not found."
	case http.StatusUnprocessableEntity:
		return "Invalid data. Check the information you entered."
	case http.StatusInternalServerError:
		return "Internal server error. Please try again later."
	default:
		return fmt.Sprintf("Server error (%d). Please try again later.", e.Status)
	}
}

// Client инкапсулирует доступ к REST-бэкенду: базовый адрес, таймаут и
// bearer-токен из сессии. Токен подставляется в каждый запрос; ответ 401
// сбрасывает сессию, чтобы протухший токен не переотправлялся.
type Client struct {
	baseURL string
	http    *http.Client
	session domain.SessionStore
	logger  *log.Entry
}

// NewClient создаёт клиент бэкенда. Пустой baseURL и нулевой timeout
// заменяются значениями по умолчанию.
func NewClient(baseURL string, timeout time.Duration, session domain.SessionStore, logger *log.Entry) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New().WithField("component", "restapi")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		logger:  logger,
	}
}

// BaseURL возвращает настроенный базовый адрес бэкенда.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, headers map[string]string, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, headers, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(log.Fields{
			"method": method,
			"path":   path,
		}).Warn("backend request failed")
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.session != nil {
			c.session.Clear()
		}
		return fmt.Errorf("%w: %s %s", domain.ErrUnauthorized, method, path)
	}
	if resp.StatusCode >= 400 {
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
