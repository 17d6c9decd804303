package cart

import (
	"sync"
	"time"

	"github.com/saborcriollo/ordering/internal/domain"
)

// Ledger хранит строки формируемого заказа для одной сессии покупателя.
// Корзина живёт только в памяти и не переживает перезапуск; все итоги
// всегда выводятся из текущего набора строк, отдельного накопленного
// счётчика, способного разойтись с ним, нет.
//
// Логический владелец у корзины один (действия приходят по одному из UI),
// но мьютекс оставлен: демо и loadtest дёргают корзину из горутин.
type Ledger struct {
	mu      sync.RWMutex
	entries []domain.CartEntry
}

// NewLedger возвращает пустую корзину.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add добавляет позицию в корзину: существующая строка увеличивает
// количество на 1, новая позиция создаёт строку с количеством 1.
// Операция всегда успешна, лимита вместимости нет.
func (l *Ledger) Add(item domain.CatalogItem) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ItemID == item.ID {
			l.entries[i].Qty++
			return
		}
	}

	l.entries = append(l.entries, domain.CartEntry{
		ItemID:         item.ID,
		Title:          item.Title,
		UnitPriceMinor: item.PriceMinor,
		Qty:            1,
		AddedAt:        time.Now().UTC(),
	})
}

// Decrement уменьшает количество на 1; строка с количеством 1 удаляется
// целиком. Отсутствующая позиция — no-op, не ошибка.
func (l *Ledger) Decrement(itemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ItemID != itemID {
			continue
		}
		if l.entries[i].Qty > 1 {
			l.entries[i].Qty--
		} else {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
		}
		return
	}
}

// Remove безусловно удаляет строку, если она есть; иначе no-op.
func (l *Ledger) Remove(itemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ItemID == itemID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Clear опустошает корзину. Вызывается после успешного оформления и при
// явной отмене.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// TotalItemCount возвращает суммарное количество единиц по всем строкам.
func (l *Ledger) TotalItemCount() int32 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total int32
	for _, e := range l.entries {
		total += e.Qty
	}
	return total
}

// TotalPriceMinor возвращает сумму корзины в минимальных единицах:
// сумма qty × цена по всем строкам.
func (l *Ledger) TotalPriceMinor() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total int64
	for _, e := range l.entries {
		total += e.SubtotalMinor()
	}
	return total
}

// Entries возвращает копию строк в порядке добавления.
func (l *Ledger) Entries() []domain.CartEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.CartEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len возвращает число строк (не единиц) в корзине.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// IsEmpty сообщает, пуста ли корзина.
func (l *Ledger) IsEmpty() bool {
	return l.Len() == 0
}

// Reconcile сверяет корзину со свежим списком позиций каталога после его
// перезагрузки. Строки, чья позиция исчезла из каталога или помечена
// недоступной, выселяются; у оставшихся обновляются название и цена до
// актуальных (цена при отображении всегда из последней загрузки).
// Возвращает выселенные строки и строки с изменившейся ценой, чтобы
// UI-слой мог показать баннер.
func (l *Ledger) Reconcile(items []domain.CatalogItem) (evicted, repriced []domain.CartEntry) {
	byID := make(map[string]domain.CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.entries[:0]
	for _, e := range l.entries {
		item, ok := byID[e.ItemID]
		if !ok || !item.Available {
			evicted = append(evicted, e)
			continue
		}
		if e.UnitPriceMinor != item.PriceMinor {
			e.UnitPriceMinor = item.PriceMinor
			e.Title = item.Title
			repriced = append(repriced, e)
		} else {
			e.Title = item.Title
		}
		kept = append(kept, e)
	}
	l.entries = kept

	return evicted, repriced
}
