package checkout

// State описывает текущую фазу оформления заказа.
type State string

const (
	// StateIdle — оформление не запущено, корзина редактируется свободно.
	StateIdle State = "idle"
	// StateAwaitingPaymentInput — оформление начато, ждём платёжные данные.
	StateAwaitingPaymentInput State = "awaiting_payment_input"
	// StateCreatingOrder — заказ отправлен во внешний сервис заказов.
	StateCreatingOrder State = "creating_order"
	// StateAuthorizingPayment — заказ создан, платёж на авторизации.
	StateAuthorizingPayment State = "authorizing_payment"
	// StateCompleted — платёж авторизован, чек выпущен, корзина очищена.
	StateCompleted State = "completed"
	// StateFailed — шаг создания заказа или платежа не удался; корзина цела.
	StateFailed State = "failed"
)

// transitions задаёт допустимые переходы между фазами оформления.
var transitions = map[State][]State{
	StateIdle:                 {StateAwaitingPaymentInput},
	StateAwaitingPaymentInput: {StateCreatingOrder, StateIdle},
	StateCreatingOrder:        {StateAuthorizingPayment, StateFailed},
	StateAuthorizingPayment:   {StateCompleted, StateFailed},
	StateCompleted:            {StateAwaitingPaymentInput, StateIdle},
	StateFailed:               {StateAwaitingPaymentInput, StateIdle},
}

// CanTransitionTo сообщает, допустим ли переход из текущей фазы в target.
func (s State) CanTransitionTo(target State) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// InFlight сообщает, идёт ли сейчас сетевой шаг оформления.
func (s State) InFlight() bool {
	return s == StateCreatingOrder || s == StateAuthorizingPayment
}

// Terminal сообщает, завершилась ли попытка оформления (успехом или отказом).
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}
