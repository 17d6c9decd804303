package session

import (
	"sync"

	"github.com/saborcriollo/ordering/internal/domain"
)

// Store — in-memory реализация SessionStore. Заменяет глобальное
// key-value хранилище браузера явной зависимостью: загружается при
// старте, мутируется при login/logout и больше никогда.
type Store struct {
	mu    sync.RWMutex
	token string
	user  domain.User
	set   bool
}

// NewStore возвращает пустую сессию.
func NewStore() *Store {
	return &Store{}
}

// Token возвращает текущий токен (пустая строка — сессии нет).
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User возвращает пользователя сессии и признак её наличия.
func (s *Store) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.set
}

// Set сохраняет токен и пользователя после успешного входа.
func (s *Store) Set(token string, user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.set = true
}

// Clear сбрасывает сессию: выход пользователя или отклонённый токен.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = domain.User{}
	s.set = false
}

var _ domain.SessionStore = (*Store)(nil)
