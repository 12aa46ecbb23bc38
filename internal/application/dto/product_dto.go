package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-llantas/internal/domain"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// ProductForm campos del formulario multipart de productos. Los numéricos
// llegan como texto y se validan en ToInput.
type ProductForm struct {
	Nombre          string `form:"nombre"`
	Marca           string `form:"marca"`
	Modelo          string `form:"modelo"`
	SKU             string `form:"sku"`
	Ancho           string `form:"ancho"`
	Perfil          string `form:"perfil"`
	Aro             string `form:"aro"`
	IndiceCarga     string `form:"indiceCarga"`
	IndiceVelocidad string `form:"indiceVelocidad"`
	TipoVehiculo    string `form:"tipoVehiculo"`
	Precio          string `form:"precio"`
	Stock           string `form:"stock"`
	Descripcion     string `form:"descripcion"`
}

// ToInput convierte el formulario. Un número mal formado es ErrInvalidInput;
// los obligatorios se validan en el mutador.
func (f ProductForm) ToInput() (entity.ProductInput, error) {
	in := entity.ProductInput{
		Nombre:          strings.TrimSpace(f.Nombre),
		Marca:           strings.TrimSpace(f.Marca),
		Modelo:          strings.TrimSpace(f.Modelo),
		SKU:             strings.TrimSpace(f.SKU),
		IndiceCarga:     strings.TrimSpace(f.IndiceCarga),
		IndiceVelocidad: strings.TrimSpace(f.IndiceVelocidad),
		TipoVehiculo:    strings.TrimSpace(f.TipoVehiculo),
		Descripcion:     f.Descripcion,
	}
	var err error
	for _, field := range []struct {
		name string
		raw  string
		dst  *int
	}{
		{"ancho", f.Ancho, &in.Ancho},
		{"perfil", f.Perfil, &in.Perfil},
		{"aro", f.Aro, &in.Aro},
		{"stock", f.Stock, &in.Stock},
	} {
		if *field.dst, err = atoiOrZero(field.raw); err != nil {
			return entity.ProductInput{}, fmt.Errorf("%s: %w", field.name, domain.ErrInvalidInput)
		}
	}
	if raw := strings.TrimSpace(f.Precio); raw != "" {
		if in.Precio, err = decimal.NewFromString(raw); err != nil {
			return entity.ProductInput{}, fmt.Errorf("precio: %w", domain.ErrInvalidInput)
		}
	}
	return in, nil
}

func atoiOrZero(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              int64           `json:"id"`
	Nombre          string          `json:"nombre"`
	Marca           string          `json:"marca"`
	Modelo          string          `json:"modelo"`
	SKU             string          `json:"sku"`
	Ancho           int             `json:"ancho"`
	Perfil          int             `json:"perfil"`
	Aro             int             `json:"aro"`
	IndiceCarga     string          `json:"indiceCarga,omitempty"`
	IndiceVelocidad string          `json:"indiceVelocidad,omitempty"`
	TipoVehiculo    string          `json:"tipoVehiculo"`
	Precio          decimal.Decimal `json:"precio"`
	Stock           int             `json:"stock"`
	ImagenURL       string          `json:"imagenUrl,omitempty"`
	Descripcion     string          `json:"descripcion,omitempty"`
}

// FromProduct mapea la entidad.
func FromProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Marca:           p.Marca,
		Modelo:          p.Modelo,
		SKU:             p.SKU,
		Ancho:           p.Ancho,
		Perfil:          p.Perfil,
		Aro:             p.Aro,
		IndiceCarga:     p.IndiceCarga,
		IndiceVelocidad: p.IndiceVelocidad,
		TipoVehiculo:    p.TipoVehiculo,
		Precio:          p.Precio,
		Stock:           p.Stock,
		ImagenURL:       p.ImagenURL,
		Descripcion:     p.Descripcion,
	}
}

// FilterStateResponse filtros aplicados a la vista.
type FilterStateResponse struct {
	Q            string `json:"q,omitempty"`
	Ancho        string `json:"ancho,omitempty"`
	Perfil       string `json:"perfil,omitempty"`
	Aro          string `json:"aro,omitempty"`
	TipoVehiculo string `json:"tipoVehiculo,omitempty"`
	Sort         string `json:"sort"`
	Active       bool   `json:"active"`
}

// FilterOptionsResponse valores disponibles para los selectores de filtro.
type FilterOptionsResponse struct {
	Anchos   []int    `json:"anchos"`
	Perfiles []int    `json:"perfiles"`
	Aros     []int    `json:"aros"`
	Tipos    []string `json:"tipos"`
}

// CatalogResponse vista del catálogo. Total es el tamaño del catálogo completo.
type CatalogResponse struct {
	Items   []ProductResponse     `json:"items"`
	Count   int                   `json:"count"`
	Total   int                   `json:"total"`
	Filters FilterStateResponse   `json:"filters"`
	Options FilterOptionsResponse `json:"options"`
}
