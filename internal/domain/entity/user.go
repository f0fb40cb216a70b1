package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario del sistema (operación single-tenant).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | operador
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
