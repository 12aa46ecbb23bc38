package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// Registry guarda un Workspace por identidad.
type Registry struct {
	backend ports.Backend
	log     zerolog.Logger
	now     func() time.Time

	mu    sync.Mutex
	items map[int64]*Workspace
}

// NewRegistry crea un registro vacío.
func NewRegistry(backend ports.Backend, log zerolog.Logger) *Registry {
	return &Registry{
		backend: backend,
		log:     log.With().Str("component", "workspace").Logger(),
		now:     time.Now,
		items:   make(map[int64]*Workspace),
	}
}

// WithClock reemplaza el reloj. Solo para pruebas.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

// Acquire devuelve el workspace de la identidad, creándolo si no existe, y
// marca el uso.
func (r *Registry) Acquire(p entity.Profile) *Workspace {
	now := r.now()
	r.mu.Lock()
	ws, ok := r.items[p.ID]
	if !ok {
		ws = newWorkspace(r.backend, p, now, r.log)
		r.items[p.ID] = ws
	}
	r.mu.Unlock()

	if ok {
		ws.touch(now, p)
	} else {
		r.log.Debug().Int64("usuario_id", p.ID).Msg("workspace creado")
	}
	return ws
}

// Lookup devuelve el workspace existente sin crearlo.
func (r *Registry) Lookup(id int64) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.items[id]
	return ws, ok
}

// Drop descarta el workspace (cierre de sesión).
func (r *Registry) Drop(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
}

// Len número de workspaces vivos.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Sweep descarta los workspaces sin uso durante más de maxIdle.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, ws := range r.items {
		if ws.idleSince(now) > maxIdle {
			delete(r.items, id)
			n++
		}
	}
	return n
}

// Run barre periódicamente hasta que ctx se cancele.
func (r *Registry) Run(ctx context.Context, interval, maxIdle time.Duration) {
	r.log.Info().Dur("interval", interval).Dur("max_idle", maxIdle).Msg("Iniciando limpieza de workspaces")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.Sweep(maxIdle); n > 0 {
				r.log.Info().Int("descartados", n).Msg("Workspaces inactivos descartados")
			}
		case <-ctx.Done():
			r.log.Info().Msg("Limpieza de workspaces detenida")
			return
		}
	}
}
