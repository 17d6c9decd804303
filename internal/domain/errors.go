package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора позиции каталога.
	ErrItemIDRequired = errors.New("item id is required")
	// Ошибка отсутствующего названия позиции.
	ErrItemTitleRequired = errors.New("item title is required")
	// Ошибка отрицательной цены позиции.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка категории вне закрытого набора.
	ErrItemCategoryInvalid = errors.New("item category is not supported")
	// Ошибка некорректного количества в строке корзины или заказа (<= 0).
	ErrEntryQtyInvalid = errors.New("entry qty must be greater than zero")
	// Ошибка отсутствия хотя бы одной позиции в заказе или чеке.
	ErrLinesRequired = errors.New("at least one line is required")
	// Ошибка отрицательной суммы заказа.
	ErrAmountNegative = errors.New("total must be non-negative")
	// Ошибка несоответствия заявленной суммы и сумм строк.
	ErrAmountMismatch = errors.New("declared total does not match lines sum")
	// Ошибка отсутствующего идентификатора заказа.
	ErrOrderIDRequired = errors.New("order id is required")
	// Ошибка отрицательной суммы платежа.
	ErrPaymentAmountNegative = errors.New("payment amount must be non-negative")
	// Ошибка неподдерживаемого способа оплаты.
	ErrPaymentMethodInvalid = errors.New("payment method is not supported")
	// Ошибка отсутствующего номера чека.
	ErrReceiptNumberRequired = errors.New("receipt number is required")

	// ErrItemNotFound возвращается, если позиция отсутствует в снапшоте каталога.
	ErrItemNotFound = errors.New("catalog item not found")
	// ErrItemUnavailable возвращается при попытке добавить недоступную позицию.
	ErrItemUnavailable = errors.New("catalog item is not available")

	// ErrEmptyCart — попытка начать оформление с пустой корзиной (валидация,
	// без сетевых вызовов).
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	// ErrCheckoutInProgress — оформление уже запущено; второй параллельный
	// checkout для той же корзины не допускается.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	// ErrCheckoutTransition — недопустимый переход состояния оформления.
	ErrCheckoutTransition = errors.New("illegal checkout state transition")

	// ErrCatalogUnavailable — каталог не загрузился; предыдущий снапшот сохранён.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrOrderCreationFailed — внешний сервис отклонил создание заказа или
	// произошла сетевая ошибка; корзина не тронута.
	ErrOrderCreationFailed = errors.New("order creation failed")
	// ErrPaymentFailed — авторизация платежа отклонена или не состоялась;
	// корзина не тронута, неоплаченный заказ может остаться на сервере.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrUnauthorized — токен отсутствует или отклонён сервером.
	ErrUnauthorized = errors.New("unauthorized")
)

// IsValidation проверяет, относится ли ошибка к локальной валидации,
// которая не требует (и не допускает) сетевого вызова.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyCart) || errors.Is(err, ErrCheckoutInProgress) || errors.Is(err, ErrCheckoutTransition)
}

// UserMessage переводит любую ошибку ядра в сообщение, пригодное для показа
// пользователю. Сырые транспортные ошибки до UI-слоя не доходят.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyCart):
		return "Your cart is empty. Add something from the menu first."
	case errors.Is(err, ErrCheckoutInProgress):
		return "A checkout is already in progress. Please wait for it to finish."
	case errors.Is(err, ErrCatalogUnavailable):
		return "The menu could not be refreshed. You are browsing the last loaded menu."
	case errors.Is(err, ErrOrderCreationFailed):
		return "We could not place your order. Your cart is untouched, please try again."
	case errors.Is(err, ErrPaymentFailed):
		return "The payment was not authorized. Your cart is untouched, please try again."
	case errors.Is(err, ErrItemUnavailable):
		return "This dish is currently not available."
	case errors.Is(err, ErrItemNotFound):
		return "This dish is no longer on the menu."
	case errors.Is(err, ErrUnauthorized):
		return "Your session has expired. Please sign in again."
	default:
		return "Something went wrong. Please try again later."
	}
}
