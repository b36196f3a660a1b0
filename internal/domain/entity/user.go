package entity

import "time"

// Roles de usuario para RBAC en las rutas protegidas.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
)

// User representa un usuario de la API.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
