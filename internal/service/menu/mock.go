package menu

import (
	"context"

	"github.com/saborcriollo/ordering/internal/domain"
)

// MockService — конфигурируемая заглушка MenuService для тестов и демо.
type MockService struct {
	Items    []domain.CatalogItem
	FetchErr error

	FetchCalls    int
	FeaturedCalls int
}

// NewMockService возвращает mock с пустым меню и успешным сценарием.
func NewMockService(items ...domain.CatalogItem) *MockService {
	return &MockService{Items: items}
}

// FetchMenu возвращает настроенный список позиций и считает вызовы.
func (m *MockService) FetchMenu(ctx context.Context) ([]domain.CatalogItem, error) {
	m.FetchCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	out := make([]domain.CatalogItem, len(m.Items))
	copy(out, m.Items)
	return out, nil
}

// FetchFeatured возвращает первые три доступные позиции.
func (m *MockService) FetchFeatured(ctx context.Context) ([]domain.CatalogItem, error) {
	m.FeaturedCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	out := make([]domain.CatalogItem, 0, 3)
	for _, item := range m.Items {
		if !item.Available {
			continue
		}
		out = append(out, item)
		if len(out) == 3 {
			break
		}
	}
	return out, nil
}

var _ domain.MenuService = (*MockService)(nil)
