package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/infrastructure/tecopos"
)

// respuestaError traduce errores de dominio y del upstream al status HTTP y
// cuerpo de error correspondientes. Los errores del API Tecopos propagan su
// propio status.
func respuestaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoAutenticado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_AUTENTICADO", Message: "inicia sesión primero con /api/auth/login"})
	case errors.Is(err, domain.ErrCredenciales):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "CREDENCIALES", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrEntradaInvalida),
		errors.Is(err, domain.ErrRegionInvalida),
		errors.Is(err, domain.ErrAreaNoEncontrada):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ENTRADA_INVALIDA", Message: err.Error()})
	case errors.Is(err, domain.ErrNegocioNoEncontrado), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: err.Error()})
	}

	var apiErr *tecopos.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: apiErr.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
