package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saborcriollo/ordering/internal/catalog"
	"github.com/saborcriollo/ordering/internal/domain"
	"github.com/saborcriollo/ordering/internal/service/menu"
)

func sampleItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: "1", Title: "Anticucho de Corazón", PriceMinor: 2590, Category: domain.CategoryGrill, Available: true},
		{ID: "2", Title: "Lomo Saltado", PriceMinor: 3290, Category: domain.CategoryGrill, Available: true},
		{ID: "7", Title: "Chicha Morada", PriceMinor: 890, Category: domain.CategoryDrinks, Available: true},
		{ID: "12", Title: "Suspiro a la Limeña", PriceMinor: 1290, Category: domain.CategoryDesserts, Available: false},
	}
}

func TestSnapshot_LoadReplacesWholesale(t *testing.T) {
	svc := menu.NewMockService(sampleItems()...)
	snap := catalog.NewSnapshot(svc, nil)

	if err := snap.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Len() != 4 {
		t.Fatalf("expected 4 items, got %d", snap.Len())
	}

	// Вторая загрузка с урезанным меню: исчезнувшие позиции отбрасываются.
	svc.Items = sampleItems()[:1]
	if err := snap.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if snap.Len() != 1 {
		t.Fatalf("expected wholesale replacement, got %d items", snap.Len())
	}
	if _, err := snap.FindByID("7"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("stale item must be dropped, got %v", err)
	}
}

func TestSnapshot_LoadFailureKeepsPrevious(t *testing.T) {
	svc := menu.NewMockService(sampleItems()...)
	snap := catalog.NewSnapshot(svc, nil)

	if err := snap.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	svc.FetchErr = errors.New("connection refused")
	err := snap.Load(context.Background())
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
	// Прежний снапшот остаётся, просмотр меню деградирует мягко.
	if snap.Len() != 4 {
		t.Fatalf("previous snapshot must be retained, got %d items", snap.Len())
	}
}

func TestSnapshot_LoadFailureWithoutPrevious(t *testing.T) {
	svc := menu.NewMockService()
	svc.FetchErr = errors.New("boom")
	snap := catalog.NewSnapshot(svc, nil)

	if err := snap.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if snap.Len() != 0 {
		t.Fatalf("expected empty snapshot, got %d", snap.Len())
	}
}

func TestSnapshot_FilterByCategory(t *testing.T) {
	svc := menu.NewMockService(sampleItems()...)
	snap := catalog.NewSnapshot(svc, nil)
	if err := snap.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		tag  domain.Category
		want int
	}{
		{domain.CategoryAll, 4},
		{domain.CategoryGrill, 2},
		{domain.CategoryDrinks, 1},
		{domain.CategoryDesserts, 1},
		// Неизвестный тег — пустой результат, не ошибка.
		{domain.Category("Sopas"), 0},
	}

	for _, tc := range cases {
		if got := snap.FilterByCategory(tc.tag); len(got) != tc.want {
			t.Errorf("FilterByCategory(%q) = %d items, want %d", tc.tag, len(got), tc.want)
		}
	}

	// Результат перезапускаем: повторный вызов даёт тот же набор.
	first := snap.FilterByCategory(domain.CategoryGrill)
	second := snap.FilterByCategory(domain.CategoryGrill)
	if len(first) != len(second) {
		t.Fatal("filter must be restartable")
	}
}

func TestSnapshot_FindByID(t *testing.T) {
	svc := menu.NewMockService(sampleItems()...)
	snap := catalog.NewSnapshot(svc, nil)
	if err := snap.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	item, err := snap.FindByID("7")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if item.Title != "Chicha Morada" {
		t.Fatalf("unexpected item: %+v", item)
	}

	if _, err := snap.FindByID("999"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSnapshot_FeaturedSkipsUnavailable(t *testing.T) {
	svc := menu.NewMockService(sampleItems()...)
	snap := catalog.NewSnapshot(svc, nil)
	if err := snap.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	featured := snap.Featured(3)
	if len(featured) != 3 {
		t.Fatalf("expected 3 featured items, got %d", len(featured))
	}
	for _, item := range featured {
		if !item.Available {
			t.Fatalf("featured must skip unavailable items: %+v", item)
		}
	}
}
