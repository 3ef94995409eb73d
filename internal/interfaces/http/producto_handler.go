package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/application/usecase"
)

// ProductoHandler alta y búsqueda de productos del catálogo.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler de productos.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear un producto (o reutilizar el existente con el mismo nombre)
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "nombre, precio, moneda"
// @Success      201   {object}  dto.CrearProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), GetUsuario(c), &in)
	if err != nil {
		return respuestaError(c, err)
	}
	if out.Creado {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// Buscar godoc
// @Summary      Buscar productos por texto libre
// @Tags         productos
// @Produce      json
// @Param        q  query  string  true  "texto de búsqueda"
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) Buscar(c *fiber.Ctx) error {
	out, err := h.uc.Buscar(c.Context(), GetUsuario(c), c.Query("q"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}
