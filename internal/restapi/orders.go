package restapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/saborcriollo/ordering/internal/domain"
)

type orderLinePayload struct {
	MenuID   int64 `json:"menuId"`
	Quantity int32 `json:"quantity"`
}

type createOrderPayload struct {
	Items      []orderLinePayload `json:"items"`
	TotalPrice float64            `json:"totalPrice"`
}

type createOrderResponse struct {
	Data struct {
		OrderID int64 `json:"orderId"`
	} `json:"data"`
	Message string `json:"message"`
}

// userOrder — заказ пользователя в истории, как его отдаёт бэкенд.
type userOrder struct {
	OrderID    int64   `json:"orderId"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

// OrderClient реализует domain.OrderService поверх REST-бэкенда.
type OrderClient struct {
	client *Client
}

// NewOrderClient создаёт клиент сервиса заказов.
func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

// CreateOrder отправляет заказ бэкенду и возвращает присвоенный идентификатор.
// Каждый вызов несёт уникальный Idempotency-Key: повтор того же запроса
// после сетевого сбоя не создаст дубликат заказа.
func (o *OrderClient) CreateOrder(ctx context.Context, lines []domain.OrderLine, totalMinor int64) (int64, error) {
	if len(lines) == 0 {
		return 0, domain.ErrLinesRequired
	}

	payload := createOrderPayload{
		Items:      make([]orderLinePayload, 0, len(lines)),
		TotalPrice: domain.FloatFromMinor(totalMinor),
	}
	for _, line := range lines {
		menuID, err := strconv.ParseInt(line.ItemID, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad item id %q", domain.ErrOrderCreationFailed, line.ItemID)
		}
		payload.Items = append(payload.Items, orderLinePayload{MenuID: menuID, Quantity: line.Qty})
	}

	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	var out createOrderResponse
	if err := o.client.postJSON(ctx, "/orders", payload, headers, &out); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrOrderCreationFailed, err)
	}
	if out.Data.OrderID <= 0 {
		return 0, fmt.Errorf("%w: backend returned no order id", domain.ErrOrderCreationFailed)
	}
	return out.Data.OrderID, nil
}

// UserOrders возвращает историю заказов текущего пользователя.
func (o *OrderClient) UserOrders(ctx context.Context) ([]domain.Order, error) {
	var out []userOrder
	if err := o.client.getJSON(ctx, "/orders/user", &out); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(out))
	for _, u := range out {
		orders = append(orders, domain.Order{
			ID:         u.OrderID,
			TotalMinor: domain.MinorFromFloat(u.TotalPrice),
			CreatedAt:  parseTime(u.CreatedAt),
		})
	}
	return orders, nil
}

var _ domain.OrderService = (*OrderClient)(nil)
