package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/repository"
	"github.com/tecobot/tecopos-api/pkg/cache"
	"github.com/tecobot/tecopos-api/pkg/logger"
)

const ttlInventario = 5 * time.Minute

// InventarioUseCase totaliza la disponibilidad de inventario del negocio
// activo, con caché corta por negocio para abaratar consultas repetidas.
type InventarioUseCase struct {
	sesiones repository.SessionRepository
	clientes AdminClientFactory
	cache    *cache.Cache
	log      *logger.Logger
}

func NewInventarioUseCase(sesiones repository.SessionRepository, clientes AdminClientFactory, c *cache.Cache, log *logger.Logger) *InventarioUseCase {
	return &InventarioUseCase{sesiones: sesiones, clientes: clientes, cache: c, log: log}
}

// Totalizar devuelve los productos con disponibilidad positiva. Un inventario
// sin existencias es ErrNotFound.
func (uc *InventarioUseCase) Totalizar(ctx context.Context, usuario string) (*dto.InventarioResponse, error) {
	ses, err := uc.sesiones.Obtener(usuario)
	if err != nil {
		return nil, err
	}
	if ses == nil || ses.Token == "" {
		return nil, domain.ErrNoAutenticado
	}

	clave := fmt.Sprintf("inventario_%d", ses.BusinessID)
	if v, ok := uc.cache.Get(clave); ok {
		if resp, ok := v.(*dto.InventarioResponse); ok {
			return resp, nil
		}
	}

	cli, err := uc.clientes(ses)
	if err != nil {
		return nil, err
	}
	filas, err := cli.DisponibilidadStock(ctx)
	if err != nil {
		return nil, err
	}

	productos := make([]dto.ProductoInventario, 0, len(filas))
	for _, f := range filas {
		if f.Disponibilidad <= 0 {
			continue
		}
		productos = append(productos, dto.ProductoInventario{
			Producto:       f.Producto,
			Disponibilidad: math.Round(f.Disponibilidad*100) / 100,
			Medida:         f.Medida,
		})
	}
	if len(productos) == 0 {
		return nil, fmt.Errorf("%w: inventario sin existencias", domain.ErrNotFound)
	}

	resp := &dto.InventarioResponse{Total: len(productos), Productos: productos}
	uc.cache.Set(clave, resp, ttlInventario)
	uc.log.Debug().Int("businessId", ses.BusinessID).Int("productos", len(productos)).Msg("inventario totalizado")
	return resp, nil
}
