package domain

import "time"

// PaymentStatus описывает состояние попытки авторизации платежа.
type PaymentStatus string

const (
	// PaymentStatusPending — запрос авторизации создан, но результат ещё не получен.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusSucceeded — платёж успешно авторизован провайдером.
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	// PaymentStatusFailed — провайдер отклонил платёж или произошла ошибка.
	PaymentStatusFailed PaymentStatus = "failed"
)

// PaymentMethod — способ оплаты, выбранный пользователем.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodTicket PaymentMethod = "ticket"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// PaymentDetails содержит данные платёжной формы. Содержимое Fields
// непрозрачно для ядра и передаётся платёжному сервису как есть.
type PaymentDetails struct {
	Method PaymentMethod
	Fields map[string]string
}

// Validate проверяет минимальную корректность платёжных данных.
func (d *PaymentDetails) Validate() []error {
	var errs []error

	switch d.Method {
	case PaymentMethodCard, PaymentMethodTicket, PaymentMethodWallet:
	default:
		errs = append(errs, ErrPaymentMethodInvalid)
	}

	return errs
}

// PaymentAttempt представляет одну попытку авторизации, привязанную к заказу.
type PaymentAttempt struct {
	OrderID     int64
	AmountMinor int64
	Method      PaymentMethod
	Status      PaymentStatus
	// FailureReason — отображаемая пользователю причина отказа; пустая при успехе.
	FailureReason string
	CreatedAt     time.Time
}

// Validate проверяет корректность полей попытки платежа.
func (p *PaymentAttempt) Validate() []error {
	var errs []error

	if p.OrderID <= 0 {
		errs = append(errs, ErrOrderIDRequired)
	}
	if p.AmountMinor < 0 {
		errs = append(errs, ErrPaymentAmountNegative)
	}

	return errs
}
