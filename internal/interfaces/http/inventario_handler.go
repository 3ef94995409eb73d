package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecobot/tecopos-api/internal/application/usecase"
)

// InventarioHandler expone el inventario totalizado.
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

// NewInventarioHandler construye el handler de inventario.
func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Totalizar godoc
// @Summary      Inventario con disponibilidad positiva del negocio activo
// @Tags         inventario
// @Produce      json
// @Success      200  {object}  dto.InventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario [get]
func (h *InventarioHandler) Totalizar(c *fiber.Ctx) error {
	out, err := h.uc.Totalizar(c.Context(), GetUsuario(c))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}
