package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/saborcriollo/ordering/internal/cart"
	"github.com/saborcriollo/ordering/internal/domain"
	"github.com/saborcriollo/ordering/internal/metrics"
	"github.com/saborcriollo/ordering/internal/receipt"
)

// Result фиксирует исход последней попытки оформления. OrderID заполняется,
// как только внешний сервис создал заказ, даже если платёж затем не прошёл:
// такой заказ остаётся на сервере неоплаченным, клиент его не откатывает.
type Result struct {
	State   State
	OrderID int64
	Receipt domain.Receipt
	Err     error
}

// Orchestrator проводит оформление по шагам: создание заказа → авторизация
// платежа → выпуск чека → очистка корзины. Корзина очищается только после
// успешной авторизации; любой отказ оставляет её нетронутой.
type Orchestrator struct {
	ledger   *cart.Ledger
	orders   domain.OrderService
	payments domain.PaymentService
	receipts *receipt.Generator
	archive  domain.ReceiptRepository
	logger   *log.Entry
	metrics  *metrics.CheckoutMetrics

	mu     sync.Mutex
	state  State
	result Result
}

// NewOrchestrator создаёт рабочий экземпляр оркестратора оформления.
func NewOrchestrator(
	ledger *cart.Ledger,
	orders domain.OrderService,
	payments domain.PaymentService,
	receipts *receipt.Generator,
	archive domain.ReceiptRepository,
	logger *log.Entry,
) *Orchestrator {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &Orchestrator{
		ledger:   ledger,
		orders:   orders,
		payments: payments,
		receipts: receipts,
		archive:  archive,
		logger:   logger,
		metrics:  metrics.NewCheckoutMetrics(),
		state:    StateIdle,
	}
}

// NewOrchestratorWithoutMetrics создаёт оркестратор без метрик (для тестов).
func NewOrchestratorWithoutMetrics(
	ledger *cart.Ledger,
	orders domain.OrderService,
	payments domain.PaymentService,
	receipts *receipt.Generator,
	archive domain.ReceiptRepository,
	logger *log.Entry,
) *Orchestrator {
	o := NewOrchestrator(ledger, orders, payments, receipts, archive, logger)
	o.metrics = nil
	return o
}

// State возвращает текущую фазу оформления.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Result возвращает исход последней попытки оформления.
func (o *Orchestrator) Result() Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result
}

// Begin открывает оформление. Пустая корзина отклоняется до любых сетевых
// вызовов; повторный Begin при незавершённой попытке возвращает
// ErrCheckoutInProgress.
func (o *Orchestrator) Begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == StateAwaitingPaymentInput || o.state.InFlight() || o.state == StateFailed {
		return domain.ErrCheckoutInProgress
	}
	if o.ledger.IsEmpty() {
		if o.metrics != nil {
			o.metrics.RecordCheckoutRejected()
		}
		o.logger.Debug("checkout rejected: empty cart")
		return domain.ErrEmptyCart
	}

	o.state = StateAwaitingPaymentInput
	o.result = Result{State: StateAwaitingPaymentInput}
	o.logger.WithFields(log.Fields{
		"items":       o.ledger.TotalItemCount(),
		"total_minor": o.ledger.TotalPriceMinor(),
	}).Info("checkout started")
	return nil
}

// SubmitPayment выполняет сетевые шаги оформления с данными платёжной формы.
// При успехе возвращает выпущенный чек; при отказе корзина не меняется и
// оформление переходит в failed, откуда доступны Retry и Cancel.
func (o *Orchestrator) SubmitPayment(ctx context.Context, details domain.PaymentDetails) (domain.Receipt, error) {
	if errs := details.Validate(); len(errs) > 0 {
		return domain.Receipt{}, errs[0]
	}

	o.mu.Lock()
	if o.state != StateAwaitingPaymentInput {
		cur := o.state
		o.mu.Unlock()
		if cur.InFlight() {
			return domain.Receipt{}, domain.ErrCheckoutInProgress
		}
		return domain.Receipt{}, fmt.Errorf("%w: submit from %s", domain.ErrCheckoutTransition, cur)
	}
	// Итоги считаются один раз по снимку корзины; правки корзины во время
	// сетевых шагов не влияют на уже отправленный заказ.
	entries := o.ledger.Entries()
	totalMinor := o.ledger.TotalPriceMinor()
	o.state = StateCreatingOrder
	o.mu.Unlock()

	start := time.Now()
	if o.metrics != nil {
		o.metrics.RecordCheckoutStarted()
	}

	orderID, err := o.createOrder(ctx, entries, totalMinor)
	if err != nil {
		return domain.Receipt{}, o.fail(Result{OrderID: 0, Err: err}, start)
	}

	o.mu.Lock()
	o.state = StateAuthorizingPayment
	o.mu.Unlock()

	attempt, err := o.authorizePayment(ctx, orderID, totalMinor, details)
	if err != nil {
		return domain.Receipt{}, o.fail(Result{OrderID: orderID, Err: err}, start)
	}

	// После успешной авторизации сначала очищается корзина, затем выпускается
	// чек: чек строится по снимку строк, а не по самой корзине.
	o.mu.Lock()
	o.ledger.Clear()
	rcpt := o.issueReceipt(orderID, entries, attempt)
	o.state = StateCompleted
	o.result = Result{State: StateCompleted, OrderID: orderID, Receipt: rcpt}
	o.mu.Unlock()

	if o.metrics != nil {
		o.metrics.RecordCheckoutCompleted()
		o.metrics.RecordCheckoutDuration(time.Since(start))
	}
	o.logger.WithFields(log.Fields{
		"order_id":    orderID,
		"receipt":     rcpt.Number,
		"total_minor": rcpt.TotalMinor,
	}).Info("checkout completed")
	return rcpt, nil
}

// Retry возвращает оформление из failed к вводу платёжных данных.
// Корзина к этому моменту не менялась, повторный заказ будет создан заново.
func (o *Orchestrator) Retry() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateFailed {
		return fmt.Errorf("%w: retry from %s", domain.ErrCheckoutTransition, o.state)
	}
	o.state = StateAwaitingPaymentInput
	o.logger.Info("checkout retry requested")
	return nil
}

// Cancel прерывает оформление и возвращает пользователя к корзине.
// Допустим при вводе платёжных данных и после отказа; во время сетевого
// шага отмена невозможна.
func (o *Orchestrator) Cancel() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateIdle:
		return nil
	case StateAwaitingPaymentInput, StateFailed, StateCompleted:
		o.state = StateIdle
		if o.metrics != nil {
			o.metrics.RecordCheckoutCanceled()
		}
		o.logger.Info("checkout canceled")
		return nil
	default:
		return domain.ErrCheckoutInProgress
	}
}

func (o *Orchestrator) createOrder(ctx context.Context, entries []domain.CartEntry, totalMinor int64) (int64, error) {
	stepStart := time.Now()
	lines := domain.LinesFromEntries(entries)

	orderID, err := o.orders.CreateOrder(ctx, lines, totalMinor)
	if o.metrics != nil {
		o.metrics.RecordStepDuration(string(domain.CheckoutStepCreateOrder), time.Since(stepStart))
	}
	if err != nil {
		o.logger.WithError(err).Warn("create order failed")
		if errors.Is(err, domain.ErrOrderCreationFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", domain.ErrOrderCreationFailed, err)
	}

	o.logger.WithFields(log.Fields{
		"order_id":    orderID,
		"lines":       len(lines),
		"total_minor": totalMinor,
	}).Info("order created")
	return orderID, nil
}

func (o *Orchestrator) authorizePayment(ctx context.Context, orderID, amountMinor int64, details domain.PaymentDetails) (domain.PaymentAttempt, error) {
	stepStart := time.Now()

	attempt, err := o.payments.Authorize(ctx, orderID, amountMinor, details)
	if o.metrics != nil {
		o.metrics.RecordStepDuration(string(domain.CheckoutStepAuthorizePayment), time.Since(stepStart))
	}
	if err != nil {
		o.logger.WithError(err).WithField("order_id", orderID).Warn("payment authorization failed")
		if errors.Is(err, domain.ErrPaymentFailed) {
			return domain.PaymentAttempt{}, err
		}
		return domain.PaymentAttempt{}, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}
	if attempt.Status != domain.PaymentStatusSucceeded {
		o.logger.WithFields(log.Fields{
			"order_id": orderID,
			"status":   attempt.Status,
			"reason":   attempt.FailureReason,
		}).Warn("payment declined")
		if attempt.FailureReason != "" {
			return domain.PaymentAttempt{}, fmt.Errorf("%w: %s", domain.ErrPaymentFailed, attempt.FailureReason)
		}
		return domain.PaymentAttempt{}, domain.ErrPaymentFailed
	}

	o.logger.WithFields(log.Fields{
		"order_id":     orderID,
		"amount_minor": amountMinor,
		"method":       attempt.Method,
	}).Info("payment authorized")
	return attempt, nil
}

func (o *Orchestrator) issueReceipt(orderID int64, entries []domain.CartEntry, attempt domain.PaymentAttempt) domain.Receipt {
	stepStart := time.Now()
	rcpt := o.receipts.Generate(orderID, entries, attempt)
	if o.metrics != nil {
		o.metrics.RecordStepDuration(string(domain.CheckoutStepGenerateReceipt), time.Since(stepStart))
	}

	// Чек — локальный артефакт; отказ архива не отменяет уже оплаченный заказ.
	if o.archive != nil {
		if err := o.archive.Save(rcpt); err != nil {
			o.logger.WithError(err).WithField("receipt", rcpt.Number).Warn("archive receipt failed")
		}
	}
	if o.metrics != nil {
		o.metrics.RecordReceiptIssued()
	}
	return rcpt
}

func (o *Orchestrator) fail(res Result, started time.Time) error {
	o.mu.Lock()
	o.state = StateFailed
	res.State = StateFailed
	o.result = res
	o.mu.Unlock()

	if o.metrics != nil {
		o.metrics.RecordCheckoutFailed()
		o.metrics.RecordCheckoutDuration(time.Since(started))
	}
	o.logger.WithError(res.Err).WithField("order_id", res.OrderID).Warn("checkout failed")
	return res.Err
}
