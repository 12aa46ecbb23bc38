package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-llantas/internal/application/auth"
	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/application/session"
	"github.com/jhoicas/panel-llantas/internal/application/workspace"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	Backend    ports.Backend
	Guard      *session.Guard
	Workspaces *workspace.Registry
	AuthUC     *auth.AuthUseCase
	Exporter   ports.OrdersExporter
	Logger     zerolog.Logger
}

// Router registra las rutas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	// Punto de entrada (público): destino de las redirecciones del guard
	app.Get("/", NewEntryHandler(deps.AppName).Get)

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Región protegida: una comprobación de sesión por petición
	panel := app.Group("/panel", SessionGuard(deps.Guard, deps.Workspaces, deps.Logger))

	profileHandler := NewProfileHandler()
	panel.Get("/perfil", profileHandler.Get)
	panel.Post("/perfil/foto", profileHandler.UpdateAvatar)

	// Catálogo, pedidos y dashboard necesitan el workspace cargado
	products := panel.Group("/productos", RequireLoaded())
	productHandler := NewProductHandler()
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	orders := panel.Group("/pedidos", RequireLoaded())
	orderHandler := NewOrderHandler(deps.Exporter, deps.AppName)
	orders.Get("/", orderHandler.List)
	orders.Get("/export", orderHandler.Export)
	orders.Put("/:id/estado", orderHandler.UpdateStatus)

	panel.Get("/dashboard", RequireLoaded(), NewDashboardHandler(deps.Backend).GetSummary)
}
