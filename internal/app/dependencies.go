package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/saborcriollo/ordering/internal/cart"
	"github.com/saborcriollo/ordering/internal/catalog"
	"github.com/saborcriollo/ordering/internal/checkout"
	"github.com/saborcriollo/ordering/internal/domain"
	"github.com/saborcriollo/ordering/internal/metrics"
	"github.com/saborcriollo/ordering/internal/receipt"
	"github.com/saborcriollo/ordering/internal/restapi"
	"github.com/saborcriollo/ordering/internal/session"
	"github.com/saborcriollo/ordering/internal/storage/memory"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Session   *session.Store
	Client    *restapi.Client
	Auth      *restapi.AuthClient
	Menu      domain.MenuService
	Orders    *restapi.OrderClient
	Payments  *restapi.PaymentClient
	Snapshot  *catalog.Snapshot
	Reloader  *catalog.Reloader
	Ledger    *cart.Ledger
	Receipts  domain.ReceiptRepository
	Generator *receipt.Generator
	Checkout  *checkout.Orchestrator
	Logger    *log.Entry
}

// NewDependencies собирает граф зависимостей поверх REST-бэкенда по
// указанному адресу.
func NewDependencies(baseURL string, cfg Config, logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	sessionStore := session.NewStore()
	client := restapi.NewClient(baseURL, cfg.APITimeout, sessionStore, logger.WithField("layer", "restapi"))

	menu := catalog.NewRetryingMenuService(
		restapi.NewMenuClient(client),
		catalog.DefaultRetryConfig(),
		logger.WithField("layer", "menu"),
	)
	orders := restapi.NewOrderClient(client)
	payments := restapi.NewPaymentClient(client)

	snapshot := catalog.NewSnapshot(menu, logger.WithField("layer", "catalog"))
	ledger := cart.NewLedger()
	reloader := catalog.NewReloader(snapshot, ledger, metrics.NewCheckoutMetrics(), logger.WithField("layer", "catalog"))
	receipts := memory.NewReceiptRepository()
	generator := receipt.NewGenerator(logger.WithField("layer", "receipt"))

	orchestrator := checkout.NewOrchestrator(
		ledger, orders, payments, generator, receipts,
		logger.WithField("layer", "checkout"),
	)

	return &Dependencies{
		Session:   sessionStore,
		Client:    client,
		Auth:      restapi.NewAuthClient(client, sessionStore),
		Menu:      menu,
		Orders:    orders,
		Payments:  payments,
		Snapshot:  snapshot,
		Reloader:  reloader,
		Ledger:    ledger,
		Receipts:  receipts,
		Generator: generator,
		Checkout:  orchestrator,
		Logger:    logger,
	}
}
