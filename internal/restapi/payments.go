package restapi

import (
	"context"
	"fmt"
	"time"

	"github.com/saborcriollo/ordering/internal/domain"
)

type processPaymentPayload struct {
	OrderID int64             `json:"orderId"`
	Amount  float64           `json:"amount"`
	Method  string            `json:"method"`
	Details map[string]string `json:"details,omitempty"`
}

type processPaymentResponse struct {
	Data struct {
		Status        string `json:"status"`
		FailureReason string `json:"failureReason"`
	} `json:"data"`
	Message string `json:"message"`
}

// PaymentClient реализует domain.PaymentService поверх REST-бэкенда.
type PaymentClient struct {
	client *Client
}

// NewPaymentClient создаёт клиент платёжного сервиса.
func NewPaymentClient(client *Client) *PaymentClient {
	return &PaymentClient{client: client}
}

// Authorize отправляет платёж на авторизацию. Отклонённый платёж — это
// обычный ответ со статусом failed, а не ошибка транспорта: решение о
// дальнейших шагах принимает вызывающая сторона.
func (p *PaymentClient) Authorize(ctx context.Context, orderID int64, amountMinor int64, details domain.PaymentDetails) (domain.PaymentAttempt, error) {
	payload := processPaymentPayload{
		OrderID: orderID,
		Amount:  domain.FloatFromMinor(amountMinor),
		Method:  string(details.Method),
		Details: details.Fields,
	}

	var out processPaymentResponse
	if err := p.client.postJSON(ctx, "/payments/process_payment", payload, nil, &out); err != nil {
		return domain.PaymentAttempt{}, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	attempt := domain.PaymentAttempt{
		OrderID:       orderID,
		AmountMinor:   amountMinor,
		Method:        details.Method,
		Status:        domain.PaymentStatus(out.Data.Status),
		FailureReason: out.Data.FailureReason,
		CreatedAt:     time.Now().UTC(),
	}
	if attempt.Status == "" {
		attempt.Status = domain.PaymentStatusFailed
		attempt.FailureReason = "backend returned no payment status"
	}
	return attempt, nil
}

var _ domain.PaymentService = (*PaymentClient)(nil)
