// Package session decide si una petición puede entrar a la región protegida del panel.
package session

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// ReasonUnauthorized motivo que el punto de entrada público muestra como aviso.
const ReasonUnauthorized = "unauthorized"

// State estado de un montaje del guard.
type State int

const (
	Checking State = iota
	Authorized
	Unauthorized
	Errored
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Authorized:
		return "authorized"
	case Unauthorized:
		return "unauthorized"
	case Errored:
		return "errored"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Policy qué hacer cuando la comprobación falla por red, servidor o límite de tasa.
type Policy string

const (
	// PolicyRedirect navega al punto de entrada sin motivo.
	PolicyRedirect Policy = "redirect"
	// PolicyRetry no navega; la capa de presentación ofrece reintentar.
	PolicyRetry Policy = "retry"
)

// ParsePolicy interpreta la configuración; cualquier valor desconocido es PolicyRedirect.
func ParsePolicy(raw string) Policy {
	if Policy(strings.ToLower(strings.TrimSpace(raw))) == PolicyRetry {
		return PolicyRetry
	}
	return PolicyRedirect
}

// Decision resultado terminal de un montaje.
type Decision struct {
	State    State
	Session  entity.Session
	Redirect string // destino de navegación; vacío si no hay que navegar
	Reason   string // motivo visible en el punto de entrada
	Retry    bool   // solo con PolicyRetry en estado Errored
	Err      error
}

// Config parámetros del guard.
type Config struct {
	RequiredRole entity.Role
	EntryPath    string
	OnError      Policy
}

// Guard controla el acceso a la región protegida.
type Guard struct {
	fetcher ports.ProfileFetcher
	cfg     Config
	log     zerolog.Logger
}

// NewGuard crea un guard. Los valores vacíos de cfg toman los de por defecto:
// rol admin, entrada "/" y PolicyRedirect.
func NewGuard(fetcher ports.ProfileFetcher, cfg Config, log zerolog.Logger) *Guard {
	if cfg.RequiredRole == "" {
		cfg.RequiredRole = entity.RoleAdmin
	}
	if cfg.EntryPath == "" {
		cfg.EntryPath = "/"
	}
	if cfg.OnError == "" {
		cfg.OnError = PolicyRedirect
	}
	return &Guard{fetcher: fetcher, cfg: cfg, log: log.With().Str("component", "session_guard").Logger()}
}

// Mount inicia la comprobación: exactamente una consulta de perfil por montaje,
// sin reintentos. La consulta corre en su propia goroutine.
func (g *Guard) Mount(ctx context.Context, creds ports.Credentials) *Mount {
	fctx, cancel := context.WithCancel(ctx)
	m := &Mount{
		guard:    g,
		cancel:   cancel,
		resolved: make(chan struct{}),
		gone:     make(chan struct{}),
		finished: make(chan struct{}),
		decision: Decision{State: Checking},
	}
	go func() {
		defer close(m.finished)
		p, err := g.fetcher.Profile(fctx, creds)
		m.resolve(g.decide(p, err))
	}()
	return m
}

// Check monta, espera la decisión y desmonta.
func (g *Guard) Check(ctx context.Context, creds ports.Credentials) Decision {
	m := g.Mount(ctx, creds)
	defer m.Unmount()
	return m.Wait()
}

func (g *Guard) decide(p *entity.Profile, err error) Decision {
	if err == nil && p == nil {
		err = &domain.APIError{Kind: domain.KindServer, Op: "perfil.get", Message: "respuesta sin perfil"}
	}
	if err == nil {
		if p.Rol != g.cfg.RequiredRole {
			return Decision{
				State:    Unauthorized,
				Session:  entity.Session{Identity: *p, Role: p.Rol, Resolved: true},
				Redirect: g.entry(ReasonUnauthorized),
				Reason:   ReasonUnauthorized,
				Err:      fmt.Errorf("rol %q: %w", p.Rol, domain.ErrForbidden),
			}
		}
		return Decision{
			State:   Authorized,
			Session: entity.Session{Identity: *p, Role: p.Rol, Resolved: true},
		}
	}

	kind, _ := domain.KindOf(err)
	switch kind {
	case domain.KindAuth:
		return Decision{State: Unauthorized, Redirect: g.entry(""), Err: err}
	case domain.KindAuthorization:
		return Decision{State: Unauthorized, Redirect: g.entry(ReasonUnauthorized), Reason: ReasonUnauthorized, Err: err}
	}

	if g.cfg.OnError == PolicyRetry {
		return Decision{State: Errored, Retry: true, Err: err}
	}
	return Decision{State: Errored, Redirect: g.entry(""), Err: err}
}

func (g *Guard) entry(reason string) string {
	if reason == "" {
		return g.cfg.EntryPath
	}
	return g.cfg.EntryPath + "?" + url.Values{"error": {reason}}.Encode()
}

// Mount es un montaje del guard. Pasa de Checking a un estado terminal una
// sola vez; después de Unmount cualquier resultado tardío se descarta.
type Mount struct {
	guard  *Guard
	cancel context.CancelFunc

	mu       sync.Mutex
	decision Decision
	unmount  bool

	resolved chan struct{}
	gone     chan struct{}
	finished chan struct{}
	once     sync.Once
}

func (m *Mount) resolve(d Decision) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unmount {
		m.guard.log.Debug().Str("estado", d.State.String()).Msg("resultado de sesión descartado tras desmontar")
		return
	}
	m.decision = d
	close(m.resolved)

	ev := m.guard.log.Debug()
	if d.State != Authorized {
		ev = m.guard.log.Info().AnErr("causa", d.Err)
	}
	ev.Str("estado", d.State.String()).
		Int64("usuario_id", d.Session.Identity.ID).
		Str("redirect", d.Redirect).
		Msg("sesión resuelta")
}

// State estado actual.
func (m *Mount) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decision.State
}

// Wait bloquea hasta la decisión o hasta Unmount. Tras Unmount sin resolver
// devuelve una decisión en Checking.
func (m *Mount) Wait() Decision {
	select {
	case <-m.resolved:
	case <-m.gone:
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decision
}

// Render ejecuta children solo si el montaje está autorizado y sigue montado.
func (m *Mount) Render(children func() error) (bool, error) {
	m.mu.Lock()
	ok := !m.unmount && m.decision.State == Authorized
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, children()
}

// Unmount cancela la consulta en curso y espera a que su goroutine termine.
func (m *Mount) Unmount() {
	m.once.Do(func() {
		m.mu.Lock()
		m.unmount = true
		m.mu.Unlock()
		close(m.gone)
		m.cancel()
	})
	<-m.finished
}
