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
	"github.com/tecobot/tecopos-api/internal/application/auth"
	"github.com/tecobot/tecopos-api/internal/application/rendimiento"
	"github.com/tecobot/tecopos-api/internal/application/usecase"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/internal/infrastructure/httpclient"
	"github.com/tecobot/tecopos-api/internal/infrastructure/memory"
	"github.com/tecobot/tecopos-api/internal/infrastructure/tecopos"
	httpRouter "github.com/tecobot/tecopos-api/internal/interfaces/http"
	"github.com/tecobot/tecopos-api/pkg/cache"
	"github.com/tecobot/tecopos-api/pkg/config"
	"github.com/tecobot/tecopos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	sesiones := memory.NewSessionRepository()
	upstream := httpclient.New(cfg.Upstream)
	authClient := tecopos.NewAuthClient(upstream)

	rendimientoFactory := func(ses *entity.Sesion) (rendimiento.Client, error) {
		return tecopos.NewClientForSession(upstream, ses, cfg.Upstream.MaxPages)
	}
	adminFactory := func(ses *entity.Sesion) (usecase.AdminClient, error) {
		return tecopos.NewClientForSession(upstream, ses, cfg.Upstream.MaxPages)
	}

	authUC := auth.NewUseCase(authClient, sesiones, cfg.JWT, log)
	rendimientoUC := rendimiento.NewUseCase(sesiones, rendimientoFactory, cfg.Pipeline, log)
	monedaUC := usecase.NewMonedaUseCase(sesiones, adminFactory, log)
	inventarioUC := usecase.NewInventarioUseCase(sesiones, adminFactory, cache.New(), log)
	productoUC := usecase.NewProductoUseCase(sesiones, adminFactory, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tecopos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		RendimientoUC: rendimientoUC,
		MonedaUC:      monedaUC,
		InventarioUC:  inventarioUC,
		ProductoUC:    productoUC,
		JWTSecret:     cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
