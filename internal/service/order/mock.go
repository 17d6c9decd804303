package order

import (
	"context"
	"sync"

	"github.com/saborcriollo/ordering/internal/domain"
)

// MockService — конфигурируемая заглушка OrderService для тестов.
type MockService struct {
	mu sync.Mutex

	NextID    int64
	CreateErr error

	CreateCalls int
	// LastLines и LastTotal фиксируют аргументы последнего вызова.
	LastLines []domain.OrderLine
	LastTotal int64
}

// NewMockService возвращает mock, выдающий идентификаторы начиная с 1.
func NewMockService() *MockService {
	return &MockService{NextID: 1}
}

// CreateOrder возвращает настроенный результат и считает вызовы.
func (m *MockService) CreateOrder(ctx context.Context, lines []domain.OrderLine, totalMinor int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	m.LastLines = append([]domain.OrderLine(nil), lines...)
	m.LastTotal = totalMinor

	if m.CreateErr != nil {
		return 0, m.CreateErr
	}

	id := m.NextID
	m.NextID++
	return id, nil
}

var _ domain.OrderService = (*MockService)(nil)
