package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/saborcriollo/ordering/internal/domain"
)

func testEntries() []domain.CartEntry {
	return []domain.CartEntry{
		{ItemID: "1", Title: "Anticucho de Corazón", UnitPriceMinor: 2590, Qty: 2},
		{ItemID: "7", Title: "Chicha Morada", UnitPriceMinor: 890, Qty: 1},
	}
}

func TestGenerate_TotalsAndNumber(t *testing.T) {
	g := NewGenerator(nil)
	g.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }

	attempt := domain.PaymentAttempt{
		OrderID:     42,
		AmountMinor: 6070,
		Method:      domain.PaymentMethodCard,
		Status:      domain.PaymentStatusSucceeded,
	}

	r := g.Generate(42, testEntries(), attempt)

	if errs := r.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("generated receipt violates invariants: %v", errs)
	}
	if r.TotalMinor != 6070 || r.TotalItems != 3 {
		t.Fatalf("unexpected totals: %d minor, %d items", r.TotalMinor, r.TotalItems)
	}
	if !strings.HasPrefix(r.Number, "RCP-") || len(r.Number) != 12 {
		t.Fatalf("unexpected receipt number: %q", r.Number)
	}
	if r.OrderID != 42 || r.Currency != domain.CurrencyPEN {
		t.Fatalf("unexpected receipt header: %+v", r)
	}
	if !r.IssuedAt.Equal(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected issue time: %v", r.IssuedAt)
	}
}

func TestGenerate_UniqueNumbers(t *testing.T) {
	g := NewGenerator(nil)
	attempt := domain.PaymentAttempt{OrderID: 1, Method: domain.PaymentMethodCard}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		r := g.Generate(1, testEntries(), attempt)
		if seen[r.Number] {
			t.Fatalf("duplicate receipt number %q", r.Number)
		}
		seen[r.Number] = true
	}
}

func TestRender(t *testing.T) {
	g := NewGenerator(nil)
	attempt := domain.PaymentAttempt{OrderID: 42, Method: domain.PaymentMethodCard}
	r := g.Generate(42, testEntries(), attempt)

	var sb strings.Builder
	if err := Render(&sb, r); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := sb.String()
	for _, want := range []string{
		"Order #42",
		r.Number,
		"Anticucho de Corazón",
		"Chicha Morada",
		"S/ 60.70",
		"Paid by card",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered receipt missing %q:\n%s", want, out)
		}
	}
}
