package entity

import "time"

// Role rol asignado por el backend a una identidad.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Profile identidad devuelta por GET /api/usuarios/perfil.
type Profile struct {
	ID        int64
	Name      string
	Email     string
	Rol       Role
	AvatarURL string
	Telefono  string
	Direccion string
	DNI       string
	CreatedAt time.Time
}

// Session identidad resuelta por el guard para un montaje.
// Resolved es false mientras el guard está comprobando.
type Session struct {
	Identity Profile
	Role     Role
	Resolved bool
}
