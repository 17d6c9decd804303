package restapi

import (
	"context"
	"strconv"
	"time"

	"github.com/saborcriollo/ordering/internal/domain"
)

// menuItem — позиция меню в том виде, в каком её отдаёт бэкенд.
type menuItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"category"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `json:"isAvailable"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// MenuClient реализует domain.MenuService поверх REST-бэкенда.
type MenuClient struct {
	client *Client
}

// NewMenuClient создаёт клиент сервиса меню.
func NewMenuClient(client *Client) *MenuClient {
	return &MenuClient{client: client}
}

// FetchMenu возвращает полный список позиций каталога.
func (m *MenuClient) FetchMenu(ctx context.Context) ([]domain.CatalogItem, error) {
	var out []menuItem
	if err := m.client.getJSON(ctx, "/menu", &out); err != nil {
		return nil, err
	}
	return mapMenuItems(out), nil
}

// FetchFeatured возвращает рекомендуемые позиции.
func (m *MenuClient) FetchFeatured(ctx context.Context) ([]domain.CatalogItem, error) {
	var out []menuItem
	if err := m.client.getJSON(ctx, "/menu/featured", &out); err != nil {
		return nil, err
	}
	return mapMenuItems(out), nil
}

func mapMenuItems(items []menuItem) []domain.CatalogItem {
	result := make([]domain.CatalogItem, 0, len(items))
	for _, it := range items {
		result = append(result, domain.CatalogItem{
			ID:          strconv.FormatInt(it.ID, 10),
			Title:       it.Title,
			Description: it.Description,
			PriceMinor:  domain.MinorFromFloat(it.Price),
			Category:    domain.Category(it.Category.Name),
			ImageURL:    it.ImageURL,
			Available:   it.IsAvailable,
			CreatedAt:   parseTime(it.CreatedAt),
			UpdatedAt:   parseTime(it.UpdatedAt),
		})
	}
	return result
}

// parseTime разбирает серверную метку времени; пустая или кривая строка
// даёт нулевое время, это не ошибка каталога.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

var _ domain.MenuService = (*MenuClient)(nil)
