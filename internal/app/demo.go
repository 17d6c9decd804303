package app

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/saborcriollo/ordering/internal/domain"
	"github.com/saborcriollo/ordering/internal/receipt"
)

// runDemo прогоняет сквозной сценарий: вход, загрузка меню, наполнение
// корзины, оформление с оплатой и печать чека.
func runDemo(ctx context.Context, cfg Config, deps *Dependencies) error {
	logger := deps.Logger

	user, err := deps.Auth.Login(ctx, cfg.DemoEmail, cfg.DemoPassword)
	if err != nil {
		logger.WithError(err).Error("login failed")
		return err
	}
	logger.WithFields(log.Fields{
		"user": user.Name,
		"role": user.Role,
	}).Info("logged in")

	// Перезагрузка каталога идёт через Reloader: вместе со снапшотом
	// сверяется и корзина.
	if err := deps.Reloader.Reload(ctx); err != nil {
		logger.WithError(err).Error(domain.UserMessage(err))
		return err
	}
	logger.WithField("items", deps.Snapshot.Len()).Info("catalog loaded")

	for _, category := range []domain.Category{domain.CategoryGrill, domain.CategoryDrinks, domain.CategoryDesserts} {
		items := deps.Snapshot.FilterByCategory(category)
		logger.WithFields(log.Fields{
			"category": category,
			"count":    len(items),
		}).Info("category")
	}

	// Наполняем корзину: две порции антикучо и чича морада.
	if err := addToCart(deps, "1", 2); err != nil {
		return err
	}
	if err := addToCart(deps, "7", 1); err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"items": deps.Ledger.TotalItemCount(),
		"total": domain.FormatMinor(deps.Ledger.TotalPriceMinor()),
	}).Info("cart ready")

	if err := deps.Checkout.Begin(); err != nil {
		logger.WithError(err).Error(domain.UserMessage(err))
		return err
	}

	details := domain.PaymentDetails{
		Method: domain.PaymentMethodCard,
		Fields: map[string]string{"holder": user.Name},
	}
	rcpt, err := deps.Checkout.SubmitPayment(ctx, details)
	if err != nil {
		logger.WithError(err).Error(domain.UserMessage(err))
		return err
	}

	fmt.Println()
	if renderErr := receipt.Render(os.Stdout, rcpt); renderErr != nil {
		logger.WithError(renderErr).Warn("receipt render failed")
	}
	fmt.Println()

	logger.WithFields(log.Fields{
		"order_id": rcpt.OrderID,
		"receipt":  rcpt.Number,
		"total":    domain.FormatMinor(rcpt.TotalMinor),
	}).Info("demo checkout finished")
	return nil
}

func addToCart(deps *Dependencies, itemID string, qty int) error {
	item, err := deps.Snapshot.FindByID(itemID)
	if err != nil {
		deps.Logger.WithError(err).WithField("item_id", itemID).Error("item not found in catalog")
		return err
	}
	for i := 0; i < qty; i++ {
		deps.Ledger.Add(item)
	}
	deps.Logger.WithFields(log.Fields{
		"item":  item.Title,
		"qty":   qty,
		"price": domain.FormatMinor(item.PriceMinor),
	}).Info("added to cart")
	return nil
}
