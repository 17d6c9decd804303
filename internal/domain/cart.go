package domain

import "time"

// CartEntry представляет одну строку формируемого заказа.
// Инвариант: в корзине не более одной записи на идентификатор позиции,
// Qty всегда строго положительный (нулевое количество означает удаление
// записи, а не запись с нулём).
type CartEntry struct {
	// ItemID — ссылка на позицию каталога по идентификатору.
	ItemID string
	// Title и UnitPriceMinor фиксируются в момент добавления и обновляются
	// при сверке корзины со свежим снапшотом каталога.
	Title          string
	UnitPriceMinor int64
	// Qty — количество единиц, всегда >= 1.
	Qty int32
	// AddedAt фиксирует момент первого добавления позиции в корзину.
	AddedAt time.Time
}

// SubtotalMinor возвращает стоимость строки: количество × цена за единицу.
func (e CartEntry) SubtotalMinor() int64 {
	return int64(e.Qty) * e.UnitPriceMinor
}

// ValidateInvariants проверяет инварианты строки корзины.
func (e *CartEntry) ValidateInvariants() []error {
	var errs []error

	if e.ItemID == "" {
		errs = append(errs, ErrItemIDRequired)
	}
	if e.Qty <= 0 {
		errs = append(errs, ErrEntryQtyInvalid)
	}
	if e.UnitPriceMinor < 0 {
		errs = append(errs, ErrItemPriceInvalid)
	}

	return errs
}
