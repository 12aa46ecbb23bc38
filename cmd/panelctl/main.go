// panelctl opera el panel de la tienda desde la terminal: consulta el
// catálogo, cambia estados de pedidos y exporta el listado en PDF.
// La sesión se toma de --session o de PANEL_SESSION (cabecera Cookie).
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/panel-llantas/internal/application/session"
	"github.com/jhoicas/panel-llantas/internal/application/workspace"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
	"github.com/jhoicas/panel-llantas/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/panel-llantas/internal/infrastructure/pdf"
	"github.com/jhoicas/panel-llantas/pkg/config"
	"github.com/jhoicas/panel-llantas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	zl := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Output: os.Stderr,
	}).Zerolog()

	client := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout(),
	}, zl)

	a := &cli{
		guard: session.NewGuard(client, session.Config{
			RequiredRole: entity.Role(cfg.Panel.RequiredRole),
			EntryPath:    cfg.Panel.EntryPath,
			// sin navegador no hay a dónde redirigir: los errores se informan
			OnError: session.PolicyRetry,
		}, zl),
		workspaces: workspace.NewRegistry(client, zl),
		exporter:   infrapdf.NewMarotoOrdersGenerator(),
		storeName:  cfg.App.Name,
		out:        os.Stdout,
		session:    cfg.Panel.Session,
	}

	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
