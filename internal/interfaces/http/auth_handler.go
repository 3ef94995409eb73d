package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecobot/tecopos-api/internal/application/auth"
	"github.com/tecobot/tecopos-api/internal/application/dto"
)

// AuthHandler maneja login y selección de sucursal.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión contra Tecopos
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, password, region"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), &in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// SeleccionarNegocio godoc
// @Summary      Activar una sucursal por nombre
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SeleccionNegocioRequest  true  "nombre_negocio"
// @Success      200   {object}  dto.SeleccionNegocioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/negocio [post]
func (h *AuthHandler) SeleccionarNegocio(c *fiber.Ctx) error {
	var in dto.SeleccionNegocioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SeleccionarNegocio(c.Context(), GetUsuario(c), &in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}
