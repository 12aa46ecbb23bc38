package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse respuesta con un único mensaje (avisos y confirmaciones).
type MessageResponse struct {
	Message string `json:"message"`
}

// EntryResponse punto de entrada público. Notice solo viene cuando la
// navegación llegó con un motivo de rechazo.
type EntryResponse struct {
	App    string `json:"app"`
	Login  string `json:"login"`
	Notice string `json:"notice,omitempty"`
}

// RetryResponse la comprobación de sesión falló y puede reintentarse.
type RetryResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Retry   string `json:"retry"`
}
