package domain

import "time"

// ReceiptLine — одна строка чека.
type ReceiptLine struct {
	Title          string
	Qty            int32
	UnitPriceMinor int64
	SubtotalMinor  int64
}

// Receipt — локально сформированный документ, подтверждающий оплаченный
// заказ. Формируется только после успешной авторизации платежа из уже
// неизменяемого снимка заказа.
type Receipt struct {
	// Number — уникальный номер чека.
	Number string
	// OrderID — идентификатор оплаченного заказа, присвоенный сервером.
	OrderID    int64
	Lines      []ReceiptLine
	TotalItems int32
	TotalMinor int64
	Currency   string
	Method     PaymentMethod
	IssuedAt   time.Time
}

// ValidateInvariants проверяет согласованность чека.
func (r *Receipt) ValidateInvariants() []error {
	var errs []error

	if r.Number == "" {
		errs = append(errs, ErrReceiptNumberRequired)
	}
	if r.OrderID <= 0 {
		errs = append(errs, ErrOrderIDRequired)
	}
	if len(r.Lines) == 0 {
		errs = append(errs, ErrLinesRequired)
	}

	var calcMinor int64
	var calcItems int32
	for _, line := range r.Lines {
		calcMinor += line.SubtotalMinor
		calcItems += line.Qty
	}
	if calcMinor != r.TotalMinor || calcItems != r.TotalItems {
		errs = append(errs, ErrAmountMismatch)
	}

	return errs
}
