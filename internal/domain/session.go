package domain

// Role описывает роль пользователя в системе.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// User — данные аутентифицированного пользователя, возвращаемые сервисом
// авторизации вместе с токеном.
type User struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}
