package domain_test

import (
	"testing"

	"github.com/saborcriollo/ordering/internal/domain"
)

func TestMinorFromFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{25.90, 2590},
		{8.90, 890},
		{60.70, 6070},
		{0, 0},
		// 19.99 не представимо точно в double, проверяем округление.
		{19.99, 1999},
		{0.005, 1},
	}

	for _, tc := range cases {
		if got := domain.MinorFromFloat(tc.in); got != tc.want {
			t.Errorf("MinorFromFloat(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFloatFromMinor(t *testing.T) {
	if got := domain.FloatFromMinor(6070); got != 60.70 {
		t.Fatalf("FloatFromMinor(6070) = %v, want 60.70", got)
	}
}

func TestFormatMinor(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{6070, "S/ 60.70"},
		{890, "S/ 8.90"},
		{5, "S/ 0.05"},
		{0, "S/ 0.00"},
		{-1250, "-S/ 12.50"},
	}

	for _, tc := range cases {
		if got := domain.FormatMinor(tc.in); got != tc.want {
			t.Errorf("FormatMinor(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
