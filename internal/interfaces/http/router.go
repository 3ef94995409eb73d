package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecobot/tecopos-api/internal/application/auth"
	"github.com/tecobot/tecopos-api/internal/application/rendimiento"
	"github.com/tecobot/tecopos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	RendimientoUC *rendimiento.UseCase
	MonedaUC      *usecase.MonedaUseCase
	InventarioUC  *usecase.InventarioUseCase
	ProductoUC    *usecase.ProductoUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; selección de negocio requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/negocio", AuthMiddleware(deps.JWTSecret), authHandler.SeleccionarNegocio)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Reportes (protegido)
	reportes := protected.Group("/reportes")
	rendimientoHandler := NewRendimientoHandler(deps.RendimientoUC)
	reportes.Post("/rendimiento-descomposicion", rendimientoHandler.Calcular)

	// Moneda (protegido)
	moneda := protected.Group("/moneda")
	monedaHandler := NewMonedaHandler(deps.MonedaUC)
	moneda.Post("/cambiar", monedaHandler.Cambiar)

	// Inventario (protegido)
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	protected.Get("/inventario", inventarioHandler.Totalizar)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Crear)
	productos.Get("/", productoHandler.Buscar)
}
