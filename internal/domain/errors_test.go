package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panel-llantas/internal/domain"
)

func TestKindFromStatus(t *testing.T) {
	cases := map[int]domain.ErrorKind{
		401: domain.KindAuth,
		403: domain.KindAuthorization,
		429: domain.KindRateLimited,
		400: domain.KindValidation,
		422: domain.KindValidation,
		500: domain.KindServer,
		503: domain.KindServer,
	}
	for status, want := range cases {
		assert.Equal(t, want, domain.KindFromStatus(status), "status %d", status)
	}
}

func TestKindOf_AtraviesaWrapping(t *testing.T) {
	base := &domain.APIError{Kind: domain.KindAuthorization, Status: 403, Op: "perfil.get"}
	wrapped := fmt.Errorf("cargar perfil: %w", base)

	kind, ok := domain.KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, domain.KindAuthorization, kind)
	assert.True(t, domain.IsKind(wrapped, domain.KindAuthorization))
	assert.False(t, domain.IsKind(errors.New("otro"), domain.KindAuthorization))
}

// El mensaje visible prioriza validación, luego backend, luego texto por clase.
func TestUserMessage_Precedencia(t *testing.T) {
	validation := &domain.APIError{
		Kind:    domain.KindValidation,
		Status:  400,
		Message: "Datos inválidos",
		Details: []string{"El SKU ya existe", "El precio debe ser positivo"},
	}
	assert.Equal(t, "El SKU ya existe", domain.UserMessage(validation))

	generic := &domain.APIError{Kind: domain.KindServer, Status: 500, Message: "Fallo en base de datos"}
	assert.Equal(t, "Fallo en base de datos", domain.UserMessage(generic))

	transport := &domain.APIError{Kind: domain.KindTransport, Err: errors.New("dial tcp: connection refused")}
	assert.Equal(t, domain.MsgConnection, domain.UserMessage(transport))

	assert.Equal(t, domain.MsgUnauthorized, domain.UserMessage(&domain.APIError{Kind: domain.KindAuth, Status: 401}))
	assert.Equal(t, domain.MsgForbidden, domain.UserMessage(&domain.APIError{Kind: domain.KindAuthorization, Status: 403}))
	assert.Equal(t, domain.MsgRequiredField, domain.UserMessage(fmt.Errorf("crear: %w", domain.ErrInvalidInput)))
	assert.Equal(t, "", domain.UserMessage(nil))
}

// 401 y 403 muestran su texto fijo aunque el backend envíe cuerpo.
func TestUserMessage_SesionYRolIgnoranCuerpo(t *testing.T) {
	expired := &domain.APIError{Kind: domain.KindAuth, Status: 401, Message: "Token inválido o expirado"}
	assert.Equal(t, domain.MsgUnauthorized, domain.UserMessage(expired))
	assert.Equal(t, domain.MsgUnauthorized, domain.UserMessage(fmt.Errorf("cargar perfil: %w", expired)))

	forbidden := &domain.APIError{Kind: domain.KindAuthorization, Status: 403, Message: "Requiere rol admin"}
	assert.Equal(t, domain.MsgForbidden, domain.UserMessage(forbidden))

	withDetails := &domain.APIError{Kind: domain.KindAuthorization, Status: 403, Details: []string{"Solo administradores"}}
	assert.Equal(t, domain.MsgForbidden, domain.UserMessage(withDetails))
}

func TestBackendMessage_ConservaTextoDelBackend(t *testing.T) {
	login := &domain.APIError{Kind: domain.KindAuth, Status: 401, Message: "Credenciales inválidas"}
	assert.Equal(t, "Credenciales inválidas", domain.BackendMessage(login))

	assert.Equal(t, domain.MsgUnauthorized, domain.BackendMessage(&domain.APIError{Kind: domain.KindAuth, Status: 401}))
	assert.Equal(t, domain.MsgRequiredField, domain.BackendMessage(fmt.Errorf("login: %w", domain.ErrInvalidInput)))
}

func TestAPIError_ErrorIncluyeOperacionYEstado(t *testing.T) {
	err := &domain.APIError{Kind: domain.KindServer, Status: 500, Op: "pedidos.estado", Message: "boom"}
	assert.Equal(t, "pedidos.estado: SERVER_FAILURE (HTTP 500): boom", err.Error())

	cause := errors.New("timeout")
	tErr := &domain.APIError{Kind: domain.KindTransport, Op: "productos.list", Err: cause}
	assert.ErrorIs(t, tErr, cause)
	assert.Equal(t, "productos.list: TRANSPORT_FAILURE: timeout", tErr.Error())
}
