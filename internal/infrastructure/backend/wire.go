package backend

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// ── Estructuras del protocolo REST ───────────────────────────────────────────

type profileWire struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	AvatarURL *string   `json:"avatarUrl"`
	Telefono  *string   `json:"telefono"`
	Direccion *string   `json:"direccion"`
	DNI       *string   `json:"dni"`
	CreatedAt time.Time `json:"createdAt"`
}

type productWire struct {
	ID              int64           `json:"id"`
	Nombre          string          `json:"nombre"`
	Marca           string          `json:"marca"`
	Modelo          string          `json:"modelo"`
	SKU             string          `json:"sku"`
	Ancho           int             `json:"ancho"`
	Perfil          int             `json:"perfil"`
	Aro             int             `json:"aro"`
	IndiceCarga     *string         `json:"indiceCarga"`
	IndiceVelocidad *string         `json:"indiceVelocidad"`
	TipoVehiculo    string          `json:"tipoVehiculo"`
	Precio          decimal.Decimal `json:"precio"`
	Stock           int             `json:"stock"`
	ImagenURL       *string         `json:"imagenUrl"`
	Descripcion     *string         `json:"descripcion"`
}

type orderWire struct {
	ID        int64           `json:"id"`
	Total     decimal.Decimal `json:"total"`
	Estado    string          `json:"estado"`
	CreatedAt time.Time       `json:"createdAt"`
	Usuario   *struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"Usuario"`
}

type loginWire struct {
	Usuario profileWire `json:"usuario"`
}

type registerWire struct {
	Usuario *profileWire `json:"usuario"`
	profileWire
}

type productEnvelope struct {
	Producto *productWire `json:"producto"`
}

type orderEnvelope struct {
	Pedido *orderWire `json:"pedido"`
}

type avatarWire struct {
	AvatarURL string `json:"avatarUrl"`
}

type statusPayload struct {
	Estado string `json:"estado"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ── Conversión a entidades ───────────────────────────────────────────────────

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (w profileWire) toEntity() entity.Profile {
	return entity.Profile{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Rol:       entity.Role(w.Rol),
		AvatarURL: str(w.AvatarURL),
		Telefono:  str(w.Telefono),
		Direccion: str(w.Direccion),
		DNI:       str(w.DNI),
		CreatedAt: w.CreatedAt,
	}
}

func (w productWire) toEntity() entity.Product {
	return entity.Product{
		ID:              w.ID,
		Nombre:          w.Nombre,
		Marca:           w.Marca,
		Modelo:          w.Modelo,
		SKU:             w.SKU,
		Ancho:           w.Ancho,
		Perfil:          w.Perfil,
		Aro:             w.Aro,
		IndiceCarga:     str(w.IndiceCarga),
		IndiceVelocidad: str(w.IndiceVelocidad),
		TipoVehiculo:    w.TipoVehiculo,
		Precio:          w.Precio,
		Stock:           w.Stock,
		ImagenURL:       str(w.ImagenURL),
		Descripcion:     str(w.Descripcion),
	}
}

func (w orderWire) toEntity() entity.Order {
	o := entity.Order{
		ID:        w.ID,
		Total:     w.Total,
		Estado:    entity.OrderStatus(w.Estado),
		CreatedAt: w.CreatedAt,
	}
	if w.Usuario != nil {
		o.Cliente = entity.Customer{Name: w.Usuario.Name, Email: w.Usuario.Email}
	}
	return o
}
