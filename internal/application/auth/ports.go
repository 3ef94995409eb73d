package auth

import (
	"context"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

// UpstreamAuth puerto de autenticación contra Tecopos. La implementación real
// vive en infrastructure/tecopos.
type UpstreamAuth interface {
	Login(ctx context.Context, region, usuario, password string) (string, error)
	InfoUsuario(ctx context.Context, region, token string) (int, error)
	MisSucursales(ctx context.Context, region, token string) ([]entity.Negocio, error)
}
