package memory

import (
	"sync"
	"time"

	"github.com/saborcriollo/ordering/internal/domain"
)

// idempotencyRepositoryInMemory хранит результаты обработанных запросов
// создания заказа по idempotency-key.
type idempotencyRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.IdempotencyRecord
}

// NewIdempotencyRepository возвращает in-memory реализацию.
func NewIdempotencyRepository() domain.IdempotencyRepository {
	return &idempotencyRepositoryInMemory{
		items: make(map[string]domain.IdempotencyRecord),
	}
}

// Get возвращает запись по ключу.
func (r *idempotencyRepositoryInMemory) Get(key string) (domain.IdempotencyRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[key]
	return rec, ok
}

// Put сохраняет запись; существующая запись не перезаписывается.
func (r *idempotencyRepositoryInMemory) Put(rec domain.IdempotencyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[rec.Key]; exists {
		return nil
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.items[rec.Key] = rec
	return nil
}

var _ domain.IdempotencyRepository = (*idempotencyRepositoryInMemory)(nil)
