package catalog

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/saborcriollo/ordering/internal/domain"
)

// CartReconciler сверяет строки корзины со свежим списком позиций каталога.
type CartReconciler interface {
	Reconcile(items []domain.CatalogItem) (evicted, repriced []domain.CartEntry)
}

// EvictionRecorder учитывает выселенные при сверке строки корзины.
type EvictionRecorder interface {
	RecordCartEvictions(n int)
}

// Reloader перезагружает снапшот каталога и после каждой успешной загрузки
// приводит корзину в соответствие с ним: исчезнувшие и недоступные позиции
// выселяются, у оставшихся обновляются названия и цены. При ошибке загрузки
// корзина не трогается, действует прежний снапшот.
type Reloader struct {
	snapshot *Snapshot
	cart     CartReconciler
	recorder EvictionRecorder
	logger   *log.Entry
}

// NewReloader создаёт перезагрузчик каталога поверх снапшота и корзины.
// recorder может быть nil, тогда выселения не учитываются в метриках.
func NewReloader(snapshot *Snapshot, cart CartReconciler, recorder EvictionRecorder, logger *log.Entry) *Reloader {
	if logger == nil {
		logger = log.New().WithField("component", "catalog")
	}
	return &Reloader{
		snapshot: snapshot,
		cart:     cart,
		recorder: recorder,
		logger:   logger,
	}
}

// Reload загружает каталог и сверяет с ним корзину.
func (r *Reloader) Reload(ctx context.Context) error {
	if err := r.snapshot.Load(ctx); err != nil {
		return err
	}

	evicted, repriced := r.cart.Reconcile(r.snapshot.Items())
	for _, e := range evicted {
		r.logger.WithFields(log.Fields{
			"item_id": e.ItemID,
			"item":    e.Title,
		}).Warn("cart entry evicted: item is no longer available")
	}
	for _, e := range repriced {
		r.logger.WithFields(log.Fields{
			"item_id":     e.ItemID,
			"item":        e.Title,
			"price_minor": e.UnitPriceMinor,
		}).Info("cart entry repriced after catalog reload")
	}
	if len(evicted) > 0 && r.recorder != nil {
		r.recorder.RecordCartEvictions(len(evicted))
	}
	return nil
}
