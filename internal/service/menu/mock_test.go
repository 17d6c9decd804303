package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/saborcriollo/ordering/internal/domain"
)

func TestMockService(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "1", Title: "Anticucho", PriceMinor: 2590, Available: true},
		{ID: "2", Title: "Parrilla Mixta", PriceMinor: 4590, Available: false},
		{ID: "3", Title: "Lomo Saltado", PriceMinor: 3290, Available: true},
		{ID: "4", Title: "Costillas BBQ", PriceMinor: 3890, Available: true},
		{ID: "5", Title: "Pollo a la Brasa", PriceMinor: 2890, Available: true},
	}
	mock := NewMockService(items...)

	menu, err := mock.FetchMenu(context.Background())
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if len(menu) != 5 {
		t.Fatalf("unexpected menu size: %d", len(menu))
	}

	featured, err := mock.FetchFeatured(context.Background())
	if err != nil {
		t.Fatalf("unexpected featured error: %v", err)
	}
	if len(featured) != 3 {
		t.Fatalf("expected 3 featured items, got %d", len(featured))
	}
	for _, item := range featured {
		if !item.Available {
			t.Fatalf("featured contains unavailable item %s", item.ID)
		}
	}

	mock.FetchErr = errors.New("menu unavailable")
	if _, err := mock.FetchMenu(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}

	if mock.FetchCalls != 2 || mock.FeaturedCalls != 1 {
		t.Fatalf("unexpected call counters: fetch=%d featured=%d", mock.FetchCalls, mock.FeaturedCalls)
	}
}
