package dto

import (
	"time"

	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// RegisterRequest entrada para registro.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse salida del perfil (sin datos de sesión).
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	DNI       string    `json:"dni,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// LoginResponse usuario autenticado. La cookie de sesión viaja en Set-Cookie.
type LoginResponse struct {
	Usuario ProfileResponse `json:"usuario"`
}

// AvatarResponse URL de la foto nueva.
type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

// FromProfile mapea la entidad.
func FromProfile(p entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Rol:       string(p.Rol),
		AvatarURL: p.AvatarURL,
		Telefono:  p.Telefono,
		Direccion: p.Direccion,
		DNI:       p.DNI,
		CreatedAt: p.CreatedAt,
	}
}
