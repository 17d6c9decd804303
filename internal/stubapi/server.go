package stubapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/saborcriollo/ordering/internal/domain"
	"github.com/saborcriollo/ordering/internal/storage/memory"
)

// Server — локальный бэкенд со встроенным меню. Повторяет контракт
// реального REST-бэкенда, чтобы приложение можно было запускать и
// тестировать без внешних сервисов.
type Server struct {
	logger      *log.Entry
	menu        []domain.CatalogItem
	idempotency domain.IdempotencyRepository

	mu          sync.Mutex
	nextOrderID int64
	orders      map[int64]stubOrder
	// declineReason при непустом значении заставляет платёжный endpoint
	// отклонять все платежи с этой причиной.
	declineReason string
}

type stubOrder struct {
	ID         int64
	TotalMinor int64
	Paid       bool
	CreatedAt  time.Time
}

// NewServer создаёт стаб-бэкенд со встроенным меню.
func NewServer(logger *log.Entry) *Server {
	if logger == nil {
		logger = log.New().WithField("component", "stubapi")
	}
	return &Server{
		logger:      logger,
		menu:        sampleMenu(),
		idempotency: memory.NewIdempotencyRepository(),
		nextOrderID: 1,
		orders:      make(map[int64]stubOrder),
	}
}

// DeclinePayments включает отклонение всех платежей с указанной причиной.
// Пустая строка возвращает успешные авторизации.
func (s *Server) DeclinePayments(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.declineReason = reason
}

// SetItemPrice меняет цену позиции встроенного меню. Возвращает false,
// если позиция не найдена.
func (s *Server) SetItemPrice(id string, priceMinor int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID == id {
			s.menu[i].PriceMinor = priceMinor
			return true
		}
	}
	return false
}

// SetItemAvailability помечает позицию встроенного меню доступной или снятой
// с продажи. Возвращает false, если позиция не найдена.
func (s *Server) SetItemAvailability(id string, available bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID == id {
			s.menu[i].Available = available
			return true
		}
	}
	return false
}

func (s *Server) menuCopy() []domain.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CatalogItem, len(s.menu))
	copy(out, s.menu)
	return out
}

// Handler возвращает корневой HTTP-обработчик стаба.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/menu", s.handleMenu)
		r.Get("/menu/featured", s.handleFeatured)
		r.Post("/orders", s.handleCreateOrder)
		r.Get("/orders/user", s.handleUserOrders)
		r.Post("/payments/process_payment", s.handleProcessPayment)
		r.Post("/auth/login", s.handleLogin)
		r.Get("/auth/verify", s.handleVerify)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMenu(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, wireMenu(s.menuCopy()))
}

func (s *Server) handleFeatured(w http.ResponseWriter, _ *http.Request) {
	featured := s.menuCopy()
	if len(featured) > 3 {
		featured = featured[:3]
	}
	writeJSON(w, http.StatusOK, wireMenu(featured))
}

type createOrderRequest struct {
	Items []struct {
		MenuID   int64 `json:"menuId"`
		Quantity int32 `json:"quantity"`
	} `json:"items"`
	TotalPrice float64 `json:"totalPrice"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "malformed order payload")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "order without items")
		return
	}

	// Повтор запроса с тем же Idempotency-Key возвращает прежний заказ.
	key := r.Header.Get("Idempotency-Key")
	if key != "" {
		if rec, ok := s.idempotency.Get(key); ok {
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"orderId": rec.OrderID}})
			return
		}
	}

	var totalMinor int64
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			writeError(w, http.StatusUnprocessableEntity, "quantity must be positive")
			return
		}
		item, ok := s.findMenuItem(it.MenuID)
		if !ok {
			writeError(w, http.StatusUnprocessableEntity, "unknown menu item "+strconv.FormatInt(it.MenuID, 10))
			return
		}
		totalMinor += item.PriceMinor * int64(it.Quantity)
	}

	// Заявленная сумма сверяется с прайсом сервера с точностью до сантима.
	if declared := domain.MinorFromFloat(req.TotalPrice); declared != totalMinor {
		writeError(w, http.StatusUnprocessableEntity, "declared total does not match menu prices")
		return
	}

	s.mu.Lock()
	orderID := s.nextOrderID
	s.nextOrderID++
	s.orders[orderID] = stubOrder{ID: orderID, TotalMinor: totalMinor, CreatedAt: time.Now().UTC()}
	s.mu.Unlock()

	if key != "" {
		_ = s.idempotency.Put(domain.IdempotencyRecord{Key: key, OrderID: orderID})
	}

	s.logger.WithFields(log.Fields{
		"order_id":    orderID,
		"total_minor": totalMinor,
	}).Info("stub order created")
	writeJSON(w, http.StatusCreated, map[string]any{"data": map[string]any{"orderId": orderID}})
}

func (s *Server) handleUserOrders(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]map[string]any, 0, len(s.orders))
	for _, o := range s.orders {
		status := "pending_payment"
		if o.Paid {
			status = "paid"
		}
		out = append(out, map[string]any{
			"orderId":    o.ID,
			"totalPrice": domain.FloatFromMinor(o.TotalMinor),
			"status":     status,
			"createdAt":  o.CreatedAt.Format(time.RFC3339),
		})
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

type processPaymentRequest struct {
	OrderID int64   `json:"orderId"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
}

func (s *Server) handleProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "malformed payment payload")
		return
	}

	s.mu.Lock()
	order, ok := s.orders[req.OrderID]
	reason := s.declineReason
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	if reason != "" {
		s.logger.WithField("order_id", req.OrderID).Info("stub payment declined")
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"status": "failed", "failureReason": reason},
		})
		return
	}
	if domain.MinorFromFloat(req.Amount) != order.TotalMinor {
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"status": "failed", "failureReason": "amount does not match order total"},
		})
		return
	}

	s.mu.Lock()
	order.Paid = true
	s.orders[req.OrderID] = order
	s.mu.Unlock()

	s.logger.WithField("order_id", req.OrderID).Info("stub payment authorized")
	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"status": "succeeded"}})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": "stub-" + uuid.NewString(),
		"user": map[string]any{
			"id":    1,
			"name":  "Demo Client",
			"email": req.Email,
			"role":  "client",
		},
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{"id": 1, "name": "Demo Client", "email": "demo@example.com", "role": "client"},
	})
}

func (s *Server) findMenuItem(menuID int64) (domain.CatalogItem, bool) {
	id := strconv.FormatInt(menuID, 10)
	for _, item := range s.menuCopy() {
		if item.ID == id {
			return item, true
		}
	}
	return domain.CatalogItem{}, false
}

func wireMenu(items []domain.CatalogItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		id, _ := strconv.ParseInt(item.ID, 10, 64)
		out = append(out, map[string]any{
			"id":          id,
			"title":       item.Title,
			"description": item.Description,
			"price":       domain.FloatFromMinor(item.PriceMinor),
			"category":    map[string]any{"id": categoryID(item.Category), "name": string(item.Category)},
			"imageUrl":    item.ImageURL,
			"isAvailable": item.Available,
		})
	}
	return out
}

func categoryID(c domain.Category) int {
	switch c {
	case domain.CategoryGrill:
		return 1
	case domain.CategoryDrinks:
		return 2
	case domain.CategoryDesserts:
		return 3
	default:
		return 0
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
