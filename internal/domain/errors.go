package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrRowBusy      = errors.New("la fila tiene una operación en curso")
)

// ErrInvalidStatus se envuelve junto con ErrInvalidInput.
var ErrInvalidStatus = errors.New("estado de pedido no válido")

// ErrorKind clasifica los fallos de una llamada al backend REST.
type ErrorKind int

const (
	// KindTransport: ninguna respuesta llegó al cliente (red, DNS, timeout).
	KindTransport ErrorKind = iota + 1
	// KindAuth: 401, sin sesión o sesión expirada.
	KindAuth
	// KindAuthorization: 403 o rol que no corresponde a la región protegida.
	KindAuthorization
	// KindValidation: 4xx con mensajes por campo.
	KindValidation
	// KindRateLimited: 429.
	KindRateLimited
	// KindServer: 5xx o cuerpo inesperado.
	KindServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "TRANSPORT_FAILURE"
	case KindAuth:
		return "AUTH_FAILURE"
	case KindAuthorization:
		return "AUTHORIZATION_FAILURE"
	case KindValidation:
		return "VALIDATION_FAILURE"
	case KindRateLimited:
		return "RATE_LIMITED"
	case KindServer:
		return "SERVER_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// APIError es el error tipado que devuelve toda llamada al backend.
// Status es 0 cuando Kind es KindTransport.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Op      string   // operación del cliente, ej. "productos.update"
	Message string   // campo "error" o "message" del cuerpo, si existe
	Details []string // mensajes de validación ("errors[].msg"), en orden
	Err     error    // causa subyacente (transporte, decodificación)
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && len(e.Details) > 0 {
		msg = e.Details[0]
	}
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (HTTP %d): %s", e.Op, e.Kind, e.Status, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *APIError) Unwrap() error { return e.Err }

// KindFromStatus clasifica un código HTTP no exitoso.
func KindFromStatus(status int) ErrorKind {
	switch {
	case status == 401:
		return KindAuth
	case status == 403:
		return KindAuthorization
	case status == 429:
		return KindRateLimited
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}

// KindOf devuelve la clase del error si err envuelve un *APIError.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsKind indica si err es un *APIError de la clase indicada.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Mensajes por defecto mostrados al operador cuando el backend no da detalle.
const (
	MsgConnection    = "Error de conexión"
	MsgUnauthorized  = "No autorizado. Por favor inicia sesión."
	MsgForbidden     = "Acceso denegado. No tienes permisos de administrador."
	MsgRateLimited   = "Demasiados intentos. Espera un momento e inténtalo de nuevo."
	MsgUnexpected    = "Ocurrió un error inesperado"
	MsgRequiredField = "Por favor completa los campos obligatorios (Nombre, SKU, Precio)"
	MsgNotFound      = "El registro ya no existe"
	MsgInvalidStatus = "Estado de pedido no válido"
	MsgRowBusy       = "Hay una operación en curso sobre este registro"
)

// BackendMessage prefiere el texto que envió el backend aunque sea un 401 o
// 403; lo usan login y registro, donde ese texto explica el rechazo.
func BackendMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Details) > 0 && apiErr.Details[0] != "" {
			return apiErr.Details[0]
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return UserMessage(err)
}

// UserMessage construye el mensaje visible. Sesión vencida y rol insuficiente
// usan siempre su texto fijo; el resto prefiere el primer mensaje de
// validación, luego el mensaje del backend, luego el texto por clase.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case KindAuth:
			return MsgUnauthorized
		case KindAuthorization:
			return MsgForbidden
		}
		if len(apiErr.Details) > 0 && apiErr.Details[0] != "" {
			return apiErr.Details[0]
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
		switch apiErr.Kind {
		case KindTransport:
			return MsgConnection
		case KindRateLimited:
			return MsgRateLimited
		default:
			return MsgUnexpected
		}
	}
	switch {
	case errors.Is(err, ErrInvalidStatus):
		return MsgInvalidStatus
	case errors.Is(err, ErrRowBusy):
		return MsgRowBusy
	case errors.Is(err, ErrInvalidInput):
		return MsgRequiredField
	case errors.Is(err, ErrNotFound):
		return MsgNotFound
	case errors.Is(err, ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, ErrForbidden):
		return MsgForbidden
	}
	return MsgUnexpected
}
