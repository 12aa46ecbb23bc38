// Package portstest ofrece un backend en memoria para pruebas de los casos de uso
// y de la capa HTTP.
package portstest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

var _ ports.Backend = (*Backend)(nil)

// Backend implementa ports.Backend con funciones reemplazables. Las funciones
// nil devuelven un valor vacío sin error, salvo Profile, que responde 401.
type Backend struct {
	ProfileFn           func(ctx context.Context, creds ports.Credentials) (*entity.Profile, error)
	LoginFn             func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	RegisterFn          func(ctx context.Context, name, email, password string) (*entity.Profile, error)
	LogoutFn            func(ctx context.Context, creds ports.Credentials) ([]*http.Cookie, error)
	ListProductsFn      func(ctx context.Context, creds ports.Credentials) ([]entity.Product, error)
	CreateProductFn     func(ctx context.Context, in entity.ProductInput, image *ports.Upload) (*entity.Product, error)
	UpdateProductFn     func(ctx context.Context, id int64, in entity.ProductInput, image *ports.Upload) (*entity.Product, error)
	DeleteProductFn     func(ctx context.Context, id int64) error
	ListOrdersFn        func(ctx context.Context, creds ports.Credentials) ([]entity.Order, error)
	UpdateOrderStatusFn func(ctx context.Context, id int64, estado entity.OrderStatus) (*entity.Order, error)
	UpdateAvatarFn      func(ctx context.Context, image ports.Upload) (string, error)
	DashboardFn         func(ctx context.Context) (json.RawMessage, error)

	mu    sync.Mutex
	calls map[string]int
}

// Calls número de invocaciones de la operación indicada (ej. "Profile").
func (b *Backend) Calls(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

func (b *Backend) record(op string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.calls == nil {
		b.calls = make(map[string]int)
	}
	b.calls[op]++
}

// Admin devuelve un ProfileFn que siempre resuelve al perfil indicado.
func Admin(p entity.Profile) func(context.Context, ports.Credentials) (*entity.Profile, error) {
	return func(context.Context, ports.Credentials) (*entity.Profile, error) {
		cp := p
		return &cp, nil
	}
}

// Fail construye el error clasificado que devolvería el cliente real.
func Fail(kind domain.ErrorKind, status int, msg string) error {
	return &domain.APIError{Kind: kind, Status: status, Op: "portstest", Message: msg}
}

func (b *Backend) Profile(ctx context.Context, creds ports.Credentials) (*entity.Profile, error) {
	b.record("Profile")
	if b.ProfileFn == nil {
		return nil, Fail(domain.KindAuth, http.StatusUnauthorized, "")
	}
	return b.ProfileFn(ctx, creds)
}

func (b *Backend) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	b.record("Login")
	if b.LoginFn == nil {
		return &ports.LoginResult{}, nil
	}
	return b.LoginFn(ctx, email, password)
}

func (b *Backend) Register(ctx context.Context, name, email, password string) (*entity.Profile, error) {
	b.record("Register")
	if b.RegisterFn == nil {
		return &entity.Profile{Name: name, Email: email, Rol: entity.RoleUser}, nil
	}
	return b.RegisterFn(ctx, name, email, password)
}

func (b *Backend) Logout(ctx context.Context, creds ports.Credentials) ([]*http.Cookie, error) {
	b.record("Logout")
	if b.LogoutFn == nil {
		return nil, nil
	}
	return b.LogoutFn(ctx, creds)
}

func (b *Backend) ListProducts(ctx context.Context, creds ports.Credentials) ([]entity.Product, error) {
	b.record("ListProducts")
	if b.ListProductsFn == nil {
		return nil, nil
	}
	return b.ListProductsFn(ctx, creds)
}

func (b *Backend) CreateProduct(ctx context.Context, _ ports.Credentials, in entity.ProductInput, image *ports.Upload) (*entity.Product, error) {
	b.record("CreateProduct")
	if b.CreateProductFn == nil {
		p := in.ApplyTo(entity.Product{ID: 1})
		return &p, nil
	}
	return b.CreateProductFn(ctx, in, image)
}

func (b *Backend) UpdateProduct(ctx context.Context, _ ports.Credentials, id int64, in entity.ProductInput, image *ports.Upload) (*entity.Product, error) {
	b.record("UpdateProduct")
	if b.UpdateProductFn == nil {
		return nil, nil
	}
	return b.UpdateProductFn(ctx, id, in, image)
}

func (b *Backend) DeleteProduct(ctx context.Context, _ ports.Credentials, id int64) error {
	b.record("DeleteProduct")
	if b.DeleteProductFn == nil {
		return nil
	}
	return b.DeleteProductFn(ctx, id)
}

func (b *Backend) ListOrders(ctx context.Context, creds ports.Credentials) ([]entity.Order, error) {
	b.record("ListOrders")
	if b.ListOrdersFn == nil {
		return nil, nil
	}
	return b.ListOrdersFn(ctx, creds)
}

func (b *Backend) UpdateOrderStatus(ctx context.Context, _ ports.Credentials, id int64, estado entity.OrderStatus) (*entity.Order, error) {
	b.record("UpdateOrderStatus")
	if b.UpdateOrderStatusFn == nil {
		return &entity.Order{ID: id, Estado: estado}, nil
	}
	return b.UpdateOrderStatusFn(ctx, id, estado)
}

func (b *Backend) UpdateAvatar(ctx context.Context, _ ports.Credentials, image ports.Upload) (string, error) {
	b.record("UpdateAvatar")
	if b.UpdateAvatarFn == nil {
		return "https://cdn.test/avatars/" + image.Filename, nil
	}
	return b.UpdateAvatarFn(ctx, image)
}

func (b *Backend) DashboardSummary(ctx context.Context, _ ports.Credentials) (json.RawMessage, error) {
	b.record("DashboardSummary")
	if b.DashboardFn == nil {
		return json.RawMessage(`{}`), nil
	}
	return b.DashboardFn(ctx)
}
