package domain

import "time"

// OrderLine представляет одну позицию создаваемого заказа:
// пара (идентификатор позиции каталога, количество).
type OrderLine struct {
	ItemID string
	Qty    int32
	// UnitPriceMinor — цена за единицу на момент отправки заказа.
	UnitPriceMinor int64
}

// Order агрегирует данные заказа, который внешний сервис заказов
// сохраняет как долговременную запись. Ядро создаёт заказ один раз и
// дальше его не мутирует: переходы статусов после оплаты — зона
// ответственности административной подсистемы.
type Order struct {
	// ID присваивается сервером при создании; до ответа сервера равен нулю.
	ID int64
	// Lines — список пар (позиция, количество).
	Lines []OrderLine
	// TotalMinor — заявленная сумма заказа; обязана совпадать с производной
	// суммой корзины на момент отправки.
	TotalMinor int64
	CreatedAt  time.Time
}

// ValidateInvariants проверяет инварианты заказа перед отправкой.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if len(o.Lines) == 0 {
		errs = append(errs, ErrLinesRequired)
	}
	if o.TotalMinor < 0 {
		errs = append(errs, ErrAmountNegative)
	}

	// Сверяем заявленную сумму с суммой строк: qty * price.
	var calc int64
	for _, line := range o.Lines {
		if line.ItemID == "" {
			errs = append(errs, ErrItemIDRequired)
		}
		if line.Qty <= 0 {
			errs = append(errs, ErrEntryQtyInvalid)
		}
		if line.UnitPriceMinor < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
		calc += int64(line.Qty) * line.UnitPriceMinor
	}
	if calc != o.TotalMinor {
		errs = append(errs, ErrAmountMismatch)
	}

	return errs
}

// LinesFromEntries строит позиции заказа из строк корзины.
func LinesFromEntries(entries []CartEntry) []OrderLine {
	lines := make([]OrderLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, OrderLine{
			ItemID:         e.ItemID,
			Qty:            e.Qty,
			UnitPriceMinor: e.UnitPriceMinor,
		})
	}
	return lines
}
