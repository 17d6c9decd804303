package domain

import "context"

// MenuService описывает взаимодействие с внешним сервисом меню.
type MenuService interface {
	// FetchMenu возвращает полный список позиций каталога.
	FetchMenu(ctx context.Context) ([]CatalogItem, error)
	// FetchFeatured возвращает рекомендуемые позиции (первые n доступных).
	FetchFeatured(ctx context.Context) ([]CatalogItem, error)
}

// OrderService описывает взаимодействие с внешним сервисом заказов.
type OrderService interface {
	// CreateOrder создаёт заказ и возвращает присвоенный сервером идентификатор.
	CreateOrder(ctx context.Context, lines []OrderLine, totalMinor int64) (int64, error)
}

// PaymentService описывает взаимодействие с платёжным сервисом.
type PaymentService interface {
	// Authorize инициирует авторизацию платежа по уже созданному заказу.
	Authorize(ctx context.Context, orderID int64, amountMinor int64, details PaymentDetails) (PaymentAttempt, error)
}

// ReceiptRepository хранит локально сформированные чеки.
type ReceiptRepository interface {
	Save(receipt Receipt) error
	Get(number string) (Receipt, error)
	List() ([]Receipt, error)
}

// SessionStore инкапсулирует состояние сессии (токен и пользователь).
// Жизненный цикл: загрузка при старте, мутация при login/logout, иначе
// только чтение. Внедряется явно, без обращения к глобальному состоянию.
type SessionStore interface {
	Token() string
	User() (User, bool)
	Set(token string, user User)
	Clear()
}

// CheckoutStep задаёт константы шагов оформления для метрик и логов.
type CheckoutStep string

const (
	CheckoutStepCreateOrder      CheckoutStep = "create_order"
	CheckoutStepAuthorizePayment CheckoutStep = "authorize_payment"
	CheckoutStepGenerateReceipt  CheckoutStep = "generate_receipt"
)
