package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/application/workspace"
	"github.com/jhoicas/panel-llantas/internal/domain"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// AuthUseCase casos de uso de autenticación. El backend valida credenciales y
// emite la cookie; aquí solo se reenvía y se limpia el estado local.
type AuthUseCase struct {
	backend    ports.Backend
	workspaces *workspace.Registry
	log        zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(backend ports.Backend, workspaces *workspace.Registry, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{backend: backend, workspaces: workspaces, log: log.With().Str("component", "auth").Logger()}
}

// Login reenvía email/password. Devuelve el usuario y las cookies a fijar.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("login: %w", domain.ErrInvalidInput)
	}
	res, err := uc.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("usuario_id", res.User.ID).Str("rol", string(res.User.Rol)).Msg("inicio de sesión")
	return res, nil
}

// Register crea una cuenta en el backend.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*entity.Profile, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("registro: %w", domain.ErrInvalidInput)
	}
	return uc.backend.Register(ctx, name, email, password)
}

// Logout cierra la sesión en el backend y descarta el workspace del operador.
// El workspace se descarta aunque el backend falle.
func (uc *AuthUseCase) Logout(ctx context.Context, creds ports.Credentials) ([]*http.Cookie, error) {
	if p, err := uc.backend.Profile(ctx, creds); err == nil && p != nil {
		uc.workspaces.Drop(p.ID)
		uc.log.Info().Int64("usuario_id", p.ID).Msg("cierre de sesión")
	}
	cookies, err := uc.backend.Logout(ctx, creds)
	if err != nil {
		uc.log.Warn().Err(err).Msg("logout rechazado por el backend")
		return nil, err
	}
	return cookies, nil
}
