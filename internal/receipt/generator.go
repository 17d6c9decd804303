package receipt

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/saborcriollo/ordering/internal/domain"
)

// Generator формирует чек из уже неизменяемого снимка оплаченного заказа.
// Формирование полностью локальное, без сетевых зависимостей, и вызывается
// только после успешной авторизации платежа.
type Generator struct {
	logger *log.Entry
	now    func() time.Time
}

// NewGenerator возвращает генератор чеков.
func NewGenerator(logger *log.Entry) *Generator {
	if logger == nil {
		logger = log.New().WithField("component", "receipt")
	}
	return &Generator{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Generate строит чек по заказу и подтверждённой попытке платежа.
// Строки чека берутся из снимка корзины на момент отправки заказа.
func (g *Generator) Generate(orderID int64, entries []domain.CartEntry, attempt domain.PaymentAttempt) domain.Receipt {
	lines := make([]domain.ReceiptLine, 0, len(entries))
	var totalMinor int64
	var totalItems int32
	for _, e := range entries {
		lines = append(lines, domain.ReceiptLine{
			Title:          e.Title,
			Qty:            e.Qty,
			UnitPriceMinor: e.UnitPriceMinor,
			SubtotalMinor:  e.SubtotalMinor(),
		})
		totalMinor += e.SubtotalMinor()
		totalItems += e.Qty
	}

	r := domain.Receipt{
		Number:     receiptNumber(),
		OrderID:    orderID,
		Lines:      lines,
		TotalItems: totalItems,
		TotalMinor: totalMinor,
		Currency:   domain.CurrencyPEN,
		Method:     attempt.Method,
		IssuedAt:   g.now(),
	}

	g.logger.WithFields(log.Fields{
		"receipt":  r.Number,
		"order_id": orderID,
		"total":    domain.FormatMinor(totalMinor),
	}).Info("receipt generated")

	return r
}

// receiptNumber возвращает короткий человекочитаемый номер чека.
func receiptNumber() string {
	return "RCP-" + strings.ToUpper(uuid.NewString()[:8])
}

// Render записывает чек как скачиваемый текстовый документ.
func Render(w io.Writer, r domain.Receipt) error {
	const rule = "----------------------------------------"

	if _, err := fmt.Fprintf(w, "SABOR CRIOLLO — PARRILLA PERUANA\n"); err != nil {
		return err
	}
	fmt.Fprintf(w, "Receipt %s\n", r.Number)
	fmt.Fprintf(w, "Order #%d\n", r.OrderID)
	fmt.Fprintf(w, "Issued %s\n", r.IssuedAt.Format(time.RFC3339))
	fmt.Fprintln(w, rule)

	for _, line := range r.Lines {
		fmt.Fprintf(w, "%2d x %-28s %10s\n", line.Qty, line.Title, domain.FormatMinor(line.SubtotalMinor))
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%d items%32s\n", r.TotalItems, domain.FormatMinor(r.TotalMinor))
	_, err := fmt.Fprintf(w, "Paid by %s\n", r.Method)
	return err
}
