package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/panel-llantas/internal/application/auth"
	"github.com/jhoicas/panel-llantas/internal/application/session"
	"github.com/jhoicas/panel-llantas/internal/application/workspace"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
	"github.com/jhoicas/panel-llantas/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/panel-llantas/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/panel-llantas/internal/interfaces/http"
	"github.com/jhoicas/panel-llantas/pkg/config"
	"github.com/jhoicas/panel-llantas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.URL).
		Msg("iniciando panel")

	zl := log.Zerolog()
	client := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout(),
	}, zl)

	guard := session.NewGuard(client, session.Config{
		RequiredRole: entity.Role(cfg.Panel.RequiredRole),
		EntryPath:    cfg.Panel.EntryPath,
		OnError:      session.ParsePolicy(cfg.Panel.OnError),
	}, zl)

	workspaces := workspace.NewRegistry(client, zl)
	authUC := auth.NewAuthUseCase(client, workspaces, zl)

	// Workspaces inactivos se descartan en segundo plano
	ctx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go workspaces.Run(ctx, time.Minute, cfg.Workspace.MaxIdle())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 << 20,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(zl))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Panel Llantas",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "workspaces": workspaces.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		Backend:    client,
		Guard:      guard,
		Workspaces: workspaces,
		AuthUC:     authUC,
		Exporter:   infrapdf.NewMarotoOrdersGenerator(),
		Logger:     zl,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("panel detenido")
}
