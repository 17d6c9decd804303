package payment

import (
	"context"
	"sync"
	"time"

	"github.com/saborcriollo/ordering/internal/domain"
)

// MockService — конфигурируемая заглушка PaymentService для тестов.
type MockService struct {
	mu sync.Mutex

	Status       domain.PaymentStatus
	Reason       string
	AuthorizeErr error

	AuthorizeCalls int
	LastOrderID    int64
	LastAmount     int64
}

// NewMockService возвращает mock с успешным сценарием по умолчанию.
func NewMockService() *MockService {
	return &MockService{Status: domain.PaymentStatusSucceeded}
}

// Authorize возвращает заранее настроенный результат и считает вызовы.
func (m *MockService) Authorize(ctx context.Context, orderID int64, amountMinor int64, details domain.PaymentDetails) (domain.PaymentAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AuthorizeCalls++
	m.LastOrderID = orderID
	m.LastAmount = amountMinor

	if m.AuthorizeErr != nil {
		return domain.PaymentAttempt{}, m.AuthorizeErr
	}

	return domain.PaymentAttempt{
		OrderID:       orderID,
		AmountMinor:   amountMinor,
		Method:        details.Method,
		Status:        m.Status,
		FailureReason: m.Reason,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

var _ domain.PaymentService = (*MockService)(nil)
