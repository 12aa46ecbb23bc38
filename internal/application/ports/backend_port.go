package ports

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// Credentials credenciales del operador reenviadas al backend.
// Cookie es el valor crudo de la cabecera Cookie del navegador.
type Credentials struct {
	Cookie string
}

// Empty indica que no hay cookie de sesión.
func (c Credentials) Empty() bool { return c.Cookie == "" }

// Upload archivo de imagen adjunto a un formulario multipart.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// LoginResult usuario autenticado más las cookies que el backend pidió fijar.
type LoginResult struct {
	User    entity.Profile
	Cookies []*http.Cookie
}

// ProfileFetcher es lo único que necesita el guard de sesión.
type ProfileFetcher interface {
	// Profile obtiene la identidad de la sesión. Devuelve *domain.APIError con
	// KindAuth si no hay sesión válida.
	Profile(ctx context.Context, creds Credentials) (*entity.Profile, error)
}

// Backend define el puerto de salida hacia la API REST de la tienda.
// Todo error devuelto es un *domain.APIError clasificado; los llamadores
// deciden por clase (domain.KindOf) y nunca por banderas ad hoc.
type Backend interface {
	ProfileFetcher

	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, name, email, password string) (*entity.Profile, error)
	Logout(ctx context.Context, creds Credentials) ([]*http.Cookie, error)

	ListProducts(ctx context.Context, creds Credentials) ([]entity.Product, error)
	CreateProduct(ctx context.Context, creds Credentials, in entity.ProductInput, image *Upload) (*entity.Product, error)
	UpdateProduct(ctx context.Context, creds Credentials, id int64, in entity.ProductInput, image *Upload) (*entity.Product, error)
	DeleteProduct(ctx context.Context, creds Credentials, id int64) error

	ListOrders(ctx context.Context, creds Credentials) ([]entity.Order, error)
	UpdateOrderStatus(ctx context.Context, creds Credentials, id int64, estado entity.OrderStatus) (*entity.Order, error)

	UpdateAvatar(ctx context.Context, creds Credentials, image Upload) (string, error)
	DashboardSummary(ctx context.Context, creds Credentials) (json.RawMessage, error)
}

// OrdersReport datos del reporte de pedidos exportable.
type OrdersReport struct {
	Store       string
	GeneratedBy string
	GeneratedAt time.Time
	Orders      []entity.Order
}

// OrdersExporter genera el documento descargable de pedidos.
type OrdersExporter interface {
	GenerateOrdersPDF(ctx context.Context, report OrdersReport) ([]byte, error)
}
