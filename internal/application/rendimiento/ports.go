package rendimiento

import (
	"context"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

// Client puerto hacia Tecopos que consume el pipeline. La implementación real
// vive en infrastructure/tecopos; los tests inyectan un stub.
type Client interface {
	ListarAreasStock(ctx context.Context) ([]entity.Area, error)
	ListarMovimientosPadre(ctx context.Context, areaID int, desde, hasta string) ([]int64, error)
	DetalleMovimiento(ctx context.Context, id int64) (*entity.Movimiento, error)
}

// ClientFactory construye el cliente Tecopos para una sesión dada.
type ClientFactory func(ses *entity.Sesion) (Client, error)
