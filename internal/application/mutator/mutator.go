// Package mutator aplica las escrituras del panel con el protocolo optimista:
// foto de la fila, cambio local, llamada al backend y, si falla, restauración
// exacta de la foto. Nunca reintenta por su cuenta.
package mutator

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/application/store"
	"github.com/jhoicas/panel-llantas/internal/domain"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// State es el estado explícito sobre el que opera el mutador.
type State interface {
	ProductRows() *store.Collection[entity.Product]
	OrderRows() *store.Collection[entity.Order]
	SetAvatar(url string)
}

// Mutator coordina las mutaciones de un workspace.
type Mutator struct {
	backend ports.Backend
	state   State
	locks   *rowLocks
	log     zerolog.Logger

	// gate: las mutaciones lo toman en lectura y las recargas en escritura.
	gate sync.RWMutex
}

// New crea un mutador sobre state.
func New(backend ports.Backend, state State, log zerolog.Logger) *Mutator {
	return &Mutator{
		backend: backend,
		state:   state,
		locks:   newRowLocks(),
		log:     log.With().Str("component", "mutator").Logger(),
	}
}

func (m *Mutator) acquire(ctx context.Context, kind string, id int64) (func(), error) {
	unlock, err := m.locks.lock(ctx, rowKey{kind: kind, id: id})
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w: %w", kind, id, domain.ErrRowBusy, err)
	}
	// la compuerta se toma después del candado de fila
	m.gate.RLock()
	return func() {
		m.gate.RUnlock()
		unlock()
	}, nil
}

// Exclusive ejecuta fn sin mutaciones en curso: espera a que terminen las
// iniciadas y retiene las nuevas hasta que fn devuelva.
func (m *Mutator) Exclusive(fn func() error) error {
	m.gate.Lock()
	defer m.gate.Unlock()
	return fn()
}

// ChangeOrderStatus cambia el estado del pedido de forma optimista.
// Devuelve la fila vigente al terminar: la reconciliada o la restaurada.
func (m *Mutator) ChangeOrderStatus(ctx context.Context, creds ports.Credentials, id int64, estado entity.OrderStatus) (entity.Order, error) {
	if !estado.Valid() {
		return entity.Order{}, fmt.Errorf("%w %q: %w", domain.ErrInvalidStatus, estado, domain.ErrInvalidInput)
	}
	unlock, err := m.acquire(ctx, "pedido", id)
	if err != nil {
		return entity.Order{}, err
	}
	defer unlock()

	orders := m.state.OrderRows()
	snapshot, ok := orders.Get(id)
	if !ok {
		return entity.Order{}, fmt.Errorf("pedido %d: %w", id, domain.ErrNotFound)
	}

	optimistic := snapshot
	optimistic.Estado = estado
	orders.Put(optimistic)

	updated, err := m.backend.UpdateOrderStatus(ctx, creds, id, estado)
	if err != nil {
		orders.Put(snapshot)
		m.log.Warn().Err(err).Int64("pedido_id", id).
			Str("estado_anterior", string(snapshot.Estado)).
			Str("estado_pedido", string(estado)).
			Msg("cambio de estado revertido")
		return snapshot, fmt.Errorf("actualizar estado del pedido %d: %w", id, err)
	}

	if updated != nil && updated.Estado != "" {
		optimistic.Estado = updated.Estado
		orders.Put(optimistic)
	}
	return optimistic, nil
}

// CreateProduct da de alta un producto. No es optimista: la fila se agrega
// solo cuando el backend devuelve el producto creado.
func (m *Mutator) CreateProduct(ctx context.Context, creds ports.Credentials, in entity.ProductInput, image *ports.Upload) (entity.Product, error) {
	if !in.Valid() {
		return entity.Product{}, fmt.Errorf("crear producto: %w", domain.ErrInvalidInput)
	}
	m.gate.RLock()
	defer m.gate.RUnlock()

	created, err := m.backend.CreateProduct(ctx, creds, in, image)
	if err != nil {
		m.log.Warn().Err(err).Str("sku", in.SKU).Msg("alta de producto rechazada")
		return entity.Product{}, fmt.Errorf("crear producto: %w", err)
	}
	m.state.ProductRows().Append(*created)
	return *created, nil
}

// UpdateProduct reemplaza los campos editables de forma optimista. La imagen
// local se conserva hasta que el backend devuelva la URL nueva.
func (m *Mutator) UpdateProduct(ctx context.Context, creds ports.Credentials, id int64, in entity.ProductInput, image *ports.Upload) (entity.Product, error) {
	if !in.Valid() {
		return entity.Product{}, fmt.Errorf("actualizar producto %d: %w", id, domain.ErrInvalidInput)
	}
	unlock, err := m.acquire(ctx, "producto", id)
	if err != nil {
		return entity.Product{}, err
	}
	defer unlock()

	products := m.state.ProductRows()
	snapshot, ok := products.Get(id)
	if !ok {
		return entity.Product{}, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}

	optimistic := in.ApplyTo(snapshot)
	products.Put(optimistic)

	updated, err := m.backend.UpdateProduct(ctx, creds, id, in, image)
	if err != nil {
		products.Put(snapshot)
		m.log.Warn().Err(err).Int64("producto_id", id).Msg("edición de producto revertida")
		return snapshot, fmt.Errorf("actualizar producto %d: %w", id, err)
	}

	if updated != nil {
		updated.ID = id
		products.Put(*updated)
		return *updated, nil
	}
	return optimistic, nil
}

// DeleteProduct quita la fila de inmediato y la reinserta en su posición
// original si el backend rechaza el borrado.
func (m *Mutator) DeleteProduct(ctx context.Context, creds ports.Credentials, id int64) error {
	unlock, err := m.acquire(ctx, "producto", id)
	if err != nil {
		return err
	}
	defer unlock()

	products := m.state.ProductRows()
	snapshot, ok := products.Get(id)
	if !ok {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	pos := products.Remove(id)

	if err := m.backend.DeleteProduct(ctx, creds, id); err != nil {
		products.InsertAt(pos, snapshot)
		m.log.Warn().Err(err).Int64("producto_id", id).Int("posicion", pos).Msg("borrado de producto revertido")
		return fmt.Errorf("eliminar producto %d: %w", id, err)
	}
	return nil
}

// UpdateAvatar sube la foto de perfil y actualiza el perfil solo al confirmar.
func (m *Mutator) UpdateAvatar(ctx context.Context, creds ports.Credentials, image ports.Upload) (string, error) {
	url, err := m.backend.UpdateAvatar(ctx, creds, image)
	if err != nil {
		m.log.Warn().Err(err).Str("archivo", image.Filename).Msg("subida de avatar fallida")
		return "", fmt.Errorf("actualizar foto de perfil: %w", err)
	}
	m.state.SetAvatar(url)
	return url, nil
}
