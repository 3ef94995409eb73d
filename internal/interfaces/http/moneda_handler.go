package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/application/usecase"
)

// MonedaHandler expone el cambio masivo de moneda.
type MonedaHandler struct {
	uc *usecase.MonedaUseCase
}

// NewMonedaHandler construye el handler de moneda.
func NewMonedaHandler(uc *usecase.MonedaUseCase) *MonedaHandler {
	return &MonedaHandler{uc: uc}
}

// Cambiar godoc
// @Summary      Cambio masivo de moneda por sistema de precio
// @Tags         moneda
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CambioMonedaRequest  true  "monedas, sistema de precio, confirmar"
// @Success      200   {object}  dto.CambioMonedaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/moneda/cambiar [post]
func (h *MonedaHandler) Cambiar(c *fiber.Ctx) error {
	var in dto.CambioMonedaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Cambiar(c.Context(), GetUsuario(c), &in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}
