package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// Profile GET /api/usuarios/perfil.
func (c *Client) Profile(ctx context.Context, creds ports.Credentials) (*entity.Profile, error) {
	const op = "usuarios.perfil"
	res, err := c.do(ctx, request{op: op, method: http.MethodGet, path: "/api/usuarios/perfil", creds: creds})
	if err != nil {
		return nil, err
	}
	var w profileWire
	if err := decode(op, res, &w); err != nil {
		return nil, err
	}
	p := w.toEntity()
	return &p, nil
}

// Login POST /api/auth/login. Devuelve las cookies de sesión emitidas por el backend.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	const op = "auth.login"
	req, err := jsonRequest(op, http.MethodPost, "/api/auth/login", ports.Credentials{}, loginPayload{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	var w loginWire
	if err := decode(op, res, &w); err != nil {
		return nil, err
	}
	return &ports.LoginResult{User: w.Usuario.toEntity(), Cookies: res.cookies}, nil
}

// Register POST /api/auth/registro.
func (c *Client) Register(ctx context.Context, name, email, password string) (*entity.Profile, error) {
	const op = "auth.registro"
	req, err := jsonRequest(op, http.MethodPost, "/api/auth/registro", ports.Credentials{}, registerPayload{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	var w registerWire
	if err := decode(op, res, &w); err != nil {
		return nil, err
	}
	p := w.profileWire.toEntity()
	if w.Usuario != nil {
		p = w.Usuario.toEntity()
	}
	return &p, nil
}

// Logout POST /api/auth/logout. Devuelve las cookies que invalidan la sesión.
func (c *Client) Logout(ctx context.Context, creds ports.Credentials) ([]*http.Cookie, error) {
	res, err := c.do(ctx, request{op: "auth.logout", method: http.MethodPost, path: "/api/auth/logout", creds: creds})
	if err != nil {
		return nil, err
	}
	return res.cookies, nil
}

// ListProducts GET /api/productos.
func (c *Client) ListProducts(ctx context.Context, creds ports.Credentials) ([]entity.Product, error) {
	const op = "productos.list"
	res, err := c.do(ctx, request{op: op, method: http.MethodGet, path: "/api/productos", creds: creds})
	if err != nil {
		return nil, err
	}
	var list []productWire
	if err := decode(op, res, &list); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(list))
	for _, w := range list {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// CreateProduct POST /api/productos (multipart, imagen opcional).
func (c *Client) CreateProduct(ctx context.Context, creds ports.Credentials, in entity.ProductInput, image *ports.Upload) (*entity.Product, error) {
	const op = "productos.create"
	p, err := c.sendProduct(ctx, op, http.MethodPost, "/api/productos", creds, in, image)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.APIError{Kind: domain.KindServer, Op: op, Message: "respuesta sin producto"}
	}
	return p, nil
}

// UpdateProduct PUT /api/productos/:id (multipart, imagen opcional). El producto
// devuelto es nil si el backend no lo incluye.
func (c *Client) UpdateProduct(ctx context.Context, creds ports.Credentials, id int64, in entity.ProductInput, image *ports.Upload) (*entity.Product, error) {
	return c.sendProduct(ctx, "productos.update", http.MethodPut, fmt.Sprintf("/api/productos/%d", id), creds, in, image)
}

func (c *Client) sendProduct(ctx context.Context, op, method, path string, creds ports.Credentials, in entity.ProductInput, image *ports.Upload) (*entity.Product, error) {
	body, contentType, err := productForm(in, image)
	if err != nil {
		return nil, &domain.APIError{Kind: domain.KindTransport, Op: op, Err: fmt.Errorf("armar formulario: %w", err)}
	}
	res, err := c.do(ctx, request{op: op, method: method, path: path, creds: creds, body: body, contentType: contentType})
	if err != nil {
		return nil, err
	}
	var env productEnvelope
	if err := decode(op, res, &env); err != nil {
		return nil, err
	}
	if env.Producto == nil {
		return nil, nil
	}
	p := env.Producto.toEntity()
	return &p, nil
}

// DeleteProduct DELETE /api/productos/:id.
func (c *Client) DeleteProduct(ctx context.Context, creds ports.Credentials, id int64) error {
	_, err := c.do(ctx, request{op: "productos.delete", method: http.MethodDelete, path: fmt.Sprintf("/api/productos/%d", id), creds: creds})
	return err
}

// ListOrders GET /api/pedidos.
func (c *Client) ListOrders(ctx context.Context, creds ports.Credentials) ([]entity.Order, error) {
	const op = "pedidos.list"
	res, err := c.do(ctx, request{op: op, method: http.MethodGet, path: "/api/pedidos", creds: creds})
	if err != nil {
		return nil, err
	}
	var list []orderWire
	if err := decode(op, res, &list); err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(list))
	for _, w := range list {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// UpdateOrderStatus PUT /api/pedidos/:id/estado. El pedido devuelto puede ser nil
// si el backend no lo incluye.
func (c *Client) UpdateOrderStatus(ctx context.Context, creds ports.Credentials, id int64, estado entity.OrderStatus) (*entity.Order, error) {
	const op = "pedidos.estado"
	req, err := jsonRequest(op, http.MethodPut, fmt.Sprintf("/api/pedidos/%d/estado", id), creds, statusPayload{Estado: string(estado)})
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	var env orderEnvelope
	if err := decode(op, res, &env); err != nil {
		return nil, err
	}
	if env.Pedido == nil {
		return nil, nil
	}
	o := env.Pedido.toEntity()
	return &o, nil
}

// UpdateAvatar POST /api/usuarios/foto-perfil. Devuelve la nueva URL.
func (c *Client) UpdateAvatar(ctx context.Context, creds ports.Credentials, image ports.Upload) (string, error) {
	const op = "usuarios.foto"
	body, contentType, err := avatarForm(image)
	if err != nil {
		return "", &domain.APIError{Kind: domain.KindTransport, Op: op, Err: fmt.Errorf("armar formulario: %w", err)}
	}
	res, err := c.do(ctx, request{op: op, method: http.MethodPost, path: "/api/usuarios/foto-perfil", creds: creds, body: body, contentType: contentType})
	if err != nil {
		return "", err
	}
	var w avatarWire
	if err := decode(op, res, &w); err != nil {
		return "", err
	}
	if w.AvatarURL == "" {
		return "", &domain.APIError{Kind: domain.KindServer, Op: op, Status: res.status, Message: "respuesta sin avatarUrl"}
	}
	return w.AvatarURL, nil
}

// DashboardSummary GET /api/dashboard/resumen. El cuerpo se reenvía sin interpretar.
func (c *Client) DashboardSummary(ctx context.Context, creds ports.Credentials) (json.RawMessage, error) {
	const op = "dashboard.resumen"
	res, err := c.do(ctx, request{op: op, method: http.MethodGet, path: "/api/dashboard/resumen", creds: creds})
	if err != nil {
		return nil, err
	}
	if !json.Valid(res.body) {
		return nil, &domain.APIError{Kind: domain.KindServer, Op: op, Status: res.status, Message: "cuerpo no es JSON"}
	}
	return json.RawMessage(res.body), nil
}
