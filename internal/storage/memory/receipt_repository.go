package memory

import (
	"sort"
	"sync"

	"github.com/saborcriollo/ordering/internal/domain"
)

// receiptRepositoryInMemory — простая in-memory реализация ReceiptRepository.
// Чеки живут столько же, сколько процесс: долговременное хранение заказов —
// забота внешнего бэкенда, локальный архив нужен для показа и скачивания.
type receiptRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Receipt
}

// NewReceiptRepository возвращает in-memory архив чеков.
func NewReceiptRepository() domain.ReceiptRepository {
	return &receiptRepositoryInMemory{
		items: make(map[string]domain.Receipt),
	}
}

// Save сохраняет чек по номеру.
func (r *receiptRepositoryInMemory) Save(receipt domain.Receipt) error {
	if receipt.Number == "" {
		return domain.ErrReceiptNumberRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Сохраняем копию строк, чтобы избежать мутаций извне.
	receipt.Lines = append([]domain.ReceiptLine(nil), receipt.Lines...)
	r.items[receipt.Number] = receipt
	return nil
}

// Get возвращает чек или ErrItemNotFound, если его нет.
func (r *receiptRepositoryInMemory) Get(number string) (domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	receipt, ok := r.items[number]
	if !ok {
		return domain.Receipt{}, domain.ErrItemNotFound
	}
	return receipt, nil
}

// List возвращает чеки от новых к старым.
func (r *receiptRepositoryInMemory) List() ([]domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Receipt, 0, len(r.items))
	for _, receipt := range r.items {
		result = append(result, receipt)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].IssuedAt.Equal(result[j].IssuedAt) {
			return result[i].IssuedAt.After(result[j].IssuedAt)
		}
		return result[i].Number > result[j].Number
	})

	return result, nil
}

var _ domain.ReceiptRepository = (*receiptRepositoryInMemory)(nil)
