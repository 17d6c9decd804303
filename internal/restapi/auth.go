package restapi

import (
	"context"
	"fmt"

	"github.com/saborcriollo/ordering/internal/domain"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  wireUser `json:"user"`
}

type verifyResponse struct {
	User wireUser `json:"user"`
}

type wireUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthClient выполняет вход и проверку токена, обновляя сессию.
type AuthClient struct {
	client  *Client
	session domain.SessionStore
}

// NewAuthClient создаёт клиент аутентификации.
func NewAuthClient(client *Client, session domain.SessionStore) *AuthClient {
	return &AuthClient{client: client, session: session}
}

// Login выполняет вход и при успехе сохраняет токен и пользователя в сессию.
func (a *AuthClient) Login(ctx context.Context, email, password string) (domain.User, error) {
	var out loginResponse
	if err := a.client.postJSON(ctx, "/auth/login", loginPayload{Email: email, Password: password}, nil, &out); err != nil {
		return domain.User{}, err
	}
	if out.Token == "" {
		return domain.User{}, fmt.Errorf("%w: login response without token", domain.ErrUnauthorized)
	}

	user := mapUser(out.User)
	a.session.Set(out.Token, user)
	return user, nil
}

// Verify проверяет текущий токен сессии; отклонённый токен уже очищен
// транспортным слоем.
func (a *AuthClient) Verify(ctx context.Context) (domain.User, error) {
	if a.session.Token() == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	var out verifyResponse
	if err := a.client.getJSON(ctx, "/auth/verify", &out); err != nil {
		return domain.User{}, err
	}
	return mapUser(out.User), nil
}

// Logout сбрасывает локальную сессию.
func (a *AuthClient) Logout() {
	a.session.Clear()
}

func mapUser(u wireUser) domain.User {
	role := domain.Role(u.Role)
	if role != domain.RoleAdmin {
		role = domain.RoleClient
	}
	return domain.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  role,
	}
}
