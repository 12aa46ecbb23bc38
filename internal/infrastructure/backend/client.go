// Package backend implementa el puerto ports.Backend sobre la API REST de la tienda.
// Todas las llamadas reenvían la cookie de sesión del operador y devuelven
// errores clasificados (*domain.APIError).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa Backend.
var _ ports.Backend = (*Client)(nil)

// maxBodyBytes límite de lectura de respuestas (listados de catálogo incluidos).
const maxBodyBytes = 8 << 20

// Config configuración del cliente.
type Config struct {
	BaseURL string        // ej. http://localhost:4000
	Timeout time.Duration // timeout de red por llamada; 0 = 15 s
}

// Client adaptador HTTP hacia el backend REST. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient construye el cliente. log puede ser zerolog.Nop().
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "backend").Logger(),
	}
}

type request struct {
	op          string
	method      string
	path        string
	creds       ports.Credentials
	body        []byte
	contentType string
}

type response struct {
	status  int
	body    []byte
	cookies []*http.Cookie
}

// errorBody formas de error que devuelve el backend.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Errors  []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

// do ejecuta la petición y clasifica cualquier fallo. Solo devuelve response
// cuando el estado es 2xx.
func (c *Client) do(ctx context.Context, r request) (*response, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, &domain.APIError{Kind: domain.KindTransport, Op: r.op, Err: fmt.Errorf("crear request: %w", err)}
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")
	if r.method == http.MethodGet {
		req.Header.Set("Cache-Control", "no-store")
	}
	if !r.creds.Empty() {
		req.Header.Set("Cookie", r.creds.Cookie)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		c.log.Debug().Err(err).Str("op", r.op).Msg("backend: llamada HTTP fallida")
		return nil, &domain.APIError{Kind: domain.KindTransport, Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.APIError{Kind: domain.KindTransport, Op: r.op, Status: resp.StatusCode, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	c.log.Debug().
		Str("op", r.op).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classify(r.op, resp.StatusCode, raw)
	}
	return &response{status: resp.StatusCode, body: raw, cookies: resp.Cookies()}, nil
}

// classify arma el *APIError de una respuesta no exitosa.
func classify(op string, status int, raw []byte) *domain.APIError {
	apiErr := &domain.APIError{Kind: domain.KindFromStatus(status), Status: status, Op: op}
	var eb errorBody
	if len(raw) > 0 && json.Unmarshal(raw, &eb) == nil {
		apiErr.Message = eb.Error
		if apiErr.Message == "" {
			apiErr.Message = eb.Message
		}
		for _, e := range eb.Errors {
			if e.Msg != "" {
				apiErr.Details = append(apiErr.Details, e.Msg)
			}
		}
	}
	return apiErr
}

// decode deserializa un cuerpo 2xx; un cuerpo inesperado es KindServer.
func decode(op string, res *response, v any) error {
	if err := json.Unmarshal(res.body, v); err != nil {
		return &domain.APIError{Kind: domain.KindServer, Op: op, Status: res.status, Err: fmt.Errorf("deserializar respuesta: %w", err)}
	}
	return nil
}

func jsonRequest(op, method, path string, creds ports.Credentials, payload any) (request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return request{}, &domain.APIError{Kind: domain.KindTransport, Op: op, Err: fmt.Errorf("serializar request: %w", err)}
	}
	return request{op: op, method: method, path: path, creds: creds, body: body, contentType: "application/json"}, nil
}
