package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/application/rendimiento"
)

// RendimientoHandler expone el pipeline de rendimiento de descomposición.
type RendimientoHandler struct {
	uc *rendimiento.UseCase
}

// NewRendimientoHandler construye el handler de rendimiento.
func NewRendimientoHandler(uc *rendimiento.UseCase) *RendimientoHandler {
	return &RendimientoHandler{uc: uc}
}

// Calcular godoc
// @Summary      KPIs de rendimiento de descomposición por área y rango de fechas
// @Tags         rendimiento
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RendimientoDescomposicionRequest  true  "área, fechas, granularidad, filtros"
// @Success      200   {object}  dto.RendimientoDescomposicionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/reportes/rendimiento-descomposicion [post]
func (h *RendimientoHandler) Calcular(c *fiber.Ctx) error {
	var in dto.RendimientoDescomposicionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, pregunta, err := h.uc.Ejecutar(c.Context(), GetUsuario(c), &in)
	if err != nil {
		return respuestaError(c, err)
	}
	if pregunta != nil {
		return c.JSON(pregunta)
	}
	return c.JSON(out)
}
