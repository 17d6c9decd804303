package domain

import "time"

// IdempotencyRecord хранит результат уже обработанного запроса создания
// заказа. Повторный запрос с тем же ключом получает прежний идентификатор
// вместо создания дубликата.
type IdempotencyRecord struct {
	Key       string
	OrderID   int64
	CreatedAt time.Time
}

// IdempotencyRepository хранит записи по idempotency-key.
type IdempotencyRepository interface {
	Get(key string) (IdempotencyRecord, bool)
	Put(rec IdempotencyRecord) error
}
