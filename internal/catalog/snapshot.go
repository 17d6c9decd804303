package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/saborcriollo/ordering/internal/domain"
)

// Snapshot хранит последний успешно загруженный набор позиций меню и
// отдаёт его на чтение. Загрузка заменяет весь набор атомарно: частичных
// слияний нет, позиции из прежней загрузки, исчезнувшие из новой,
// отбрасываются. При ошибке загрузки прежний снапшот (или пустой, если
// загрузок ещё не было) сохраняется, а ошибка возвращается вызывающему;
// политика повторов — забота вызывающего, не снапшота.
type Snapshot struct {
	menu   domain.MenuService
	logger *log.Entry

	// Одновременные Load схлопываются в один запрос к сервису меню.
	sf singleflight.Group

	mu       sync.RWMutex
	items    []domain.CatalogItem
	loadedAt time.Time
}

// NewSnapshot создаёт пустой снапшот поверх сервиса меню.
func NewSnapshot(menu domain.MenuService, logger *log.Entry) *Snapshot {
	if logger == nil {
		logger = log.New().WithField("component", "catalog")
	}
	return &Snapshot{
		menu:   menu,
		logger: logger,
	}
}

// Load запрашивает полный каталог и при успехе заменяет снапшот целиком.
func (s *Snapshot) Load(ctx context.Context) error {
	_, err, shared := s.sf.Do("load", func() (interface{}, error) {
		items, err := s.menu.FetchMenu(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("catalog load failed, keeping previous snapshot")
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}

		s.mu.Lock()
		s.items = items
		s.loadedAt = time.Now().UTC()
		s.mu.Unlock()

		s.logger.WithField("items", len(items)).Info("catalog snapshot replaced")
		return nil, nil
	})
	if shared {
		s.logger.Debug("catalog load coalesced with concurrent call")
	}
	return err
}

// Items возвращает копию текущего набора позиций.
func (s *Snapshot) Items() []domain.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// FilterByCategory возвращает позиции выбранной категории. Чистая функция
// над текущим снапшотом: CategoryAll совпадает со всеми позициями,
// неизвестная категория даёт пустой результат, а не ошибку.
func (s *Snapshot) FilterByCategory(tag domain.Category) []domain.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CatalogItem, 0, len(s.items))
	for _, item := range s.items {
		if tag == domain.CategoryAll || item.Category == tag {
			out = append(out, item)
		}
	}
	return out
}

// FindByID возвращает позицию по идентификатору или ErrItemNotFound.
// Используется корзиной для отображения актуальных названия и цены.
func (s *Snapshot) FindByID(id string) (domain.CatalogItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.CatalogItem{}, domain.ErrItemNotFound
}

// Featured возвращает первые n доступных позиций для витрины.
func (s *Snapshot) Featured(n int) []domain.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CatalogItem, 0, n)
	for _, item := range s.items {
		if !item.Available {
			continue
		}
		out = append(out, item)
		if len(out) >= n {
			break
		}
	}
	return out
}

// Len возвращает число позиций в текущем снапшоте.
func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// LoadedAt возвращает момент последней успешной загрузки (нулевое время,
// если загрузок ещё не было).
func (s *Snapshot) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
