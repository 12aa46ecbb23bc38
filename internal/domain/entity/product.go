package entity

import "github.com/shopspring/decimal"

// Tipos de vehículo que ofrece el formulario de productos.
const (
	VehiculoAuto      = "Auto"
	VehiculoCamioneta = "Camioneta"
	VehiculoCamion    = "Camión"
)

// Product representa una llanta del catálogo.
// ID lo asigna el backend y es monótono creciente; no cambia después de asignado.
type Product struct {
	ID              int64
	Nombre          string
	Marca           string
	Modelo          string
	SKU             string // único en el catálogo
	Ancho           int    // mm
	Perfil          int    // %
	Aro             int    // pulgadas
	IndiceCarga     string
	IndiceVelocidad string
	TipoVehiculo    string
	Precio          decimal.Decimal
	Stock           int
	ImagenURL       string
	Descripcion     string
}

// Key identifica la fila dentro de una colección.
func (p Product) Key() int64 { return p.ID }

// ProductInput son los campos editables de un producto (alta y edición).
type ProductInput struct {
	Nombre          string
	Marca           string
	Modelo          string
	SKU             string
	Ancho           int
	Perfil          int
	Aro             int
	IndiceCarga     string
	IndiceVelocidad string
	TipoVehiculo    string
	Precio          decimal.Decimal
	Stock           int
	Descripcion     string
}

// Valid verifica los campos obligatorios del formulario: nombre, SKU y precio positivo.
func (in ProductInput) Valid() bool {
	return in.Nombre != "" && in.SKU != "" && in.Precio.GreaterThan(decimal.Zero) && in.Stock >= 0
}

// ApplyTo devuelve una copia de p con los campos editables reemplazados.
// ID e ImagenURL se conservan.
func (in ProductInput) ApplyTo(p Product) Product {
	p.Nombre = in.Nombre
	p.Marca = in.Marca
	p.Modelo = in.Modelo
	p.SKU = in.SKU
	p.Ancho = in.Ancho
	p.Perfil = in.Perfil
	p.Aro = in.Aro
	p.IndiceCarga = in.IndiceCarga
	p.IndiceVelocidad = in.IndiceVelocidad
	p.TipoVehiculo = in.TipoVehiculo
	p.Precio = in.Precio
	p.Stock = in.Stock
	p.Descripcion = in.Descripcion
	return p
}
