// Package workspace mantiene el estado en memoria de cada operador: su perfil,
// el catálogo completo y los pedidos. No persiste nada; se descarta al cerrar
// sesión o tras un tiempo sin uso.
package workspace

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/panel-llantas/internal/application/mutator"
	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/application/store"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

var _ mutator.State = (*Workspace)(nil)

// Workspace estado explícito de un operador.
type Workspace struct {
	backend ports.Backend

	mu       sync.Mutex
	profile  entity.Profile
	lastUsed time.Time

	loadMu   sync.Mutex
	products *store.Collection[entity.Product]
	orders   *store.Collection[entity.Order]

	mutator *mutator.Mutator
}

func newWorkspace(backend ports.Backend, profile entity.Profile, now time.Time, log zerolog.Logger) *Workspace {
	ws := &Workspace{
		backend:  backend,
		profile:  profile,
		lastUsed: now,
		products: store.NewCollection[entity.Product](),
		orders:   store.NewCollection[entity.Order](),
	}
	ws.mutator = mutator.New(backend, ws, log.With().Int64("usuario_id", profile.ID).Logger())
	return ws
}

// Profile perfil vigente del operador.
func (w *Workspace) Profile() entity.Profile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.profile
}

// SetAvatar actualiza la foto del perfil en memoria.
func (w *Workspace) SetAvatar(url string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.profile.AvatarURL = url
}

func (w *Workspace) ProductRows() *store.Collection[entity.Product] { return w.products }
func (w *Workspace) OrderRows() *store.Collection[entity.Order]     { return w.orders }

// Mutator mutador ligado a este workspace.
func (w *Workspace) Mutator() *mutator.Mutator { return w.mutator }

func (w *Workspace) touch(now time.Time, p entity.Profile) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastUsed = now
	// el avatar local puede ser más reciente que el del perfil consultado
	if p.AvatarURL == "" {
		p.AvatarURL = w.profile.AvatarURL
	}
	w.profile = p
}

func (w *Workspace) idleSince(now time.Time) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return now.Sub(w.lastUsed)
}

// Load carga productos y pedidos en paralelo. Sin force solo pide las
// colecciones que aún no se cargaron. Corre con el mutador en exclusiva:
// ningún Replace ocurre con una mutación en vuelo.
func (w *Workspace) Load(ctx context.Context, creds ports.Credentials, force bool) error {
	w.loadMu.Lock()
	defer w.loadMu.Unlock()

	needProducts := force || !w.products.Loaded()
	needOrders := force || !w.orders.Loaded()
	if !needProducts && !needOrders {
		return nil
	}

	return w.mutator.Exclusive(func() error {
		g, gctx := errgroup.WithContext(ctx)
		if needProducts {
			g.Go(func() error {
				list, err := w.backend.ListProducts(gctx, creds)
				if err != nil {
					return fmt.Errorf("cargar productos: %w", err)
				}
				w.products.Replace(list)
				return nil
			})
		}
		if needOrders {
			g.Go(func() error {
				list, err := w.backend.ListOrders(gctx, creds)
				if err != nil {
					return fmt.Errorf("cargar pedidos: %w", err)
				}
				w.orders.Replace(list)
				return nil
			})
		}
		return g.Wait()
	})
}
