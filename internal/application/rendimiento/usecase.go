package rendimiento

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/repository"
	"github.com/tecobot/tecopos-api/pkg/config"
	"github.com/tecobot/tecopos-api/pkg/logger"
)

// UseCase orquesta el pipeline de rendimiento de descomposición: resolución de
// área, troceo de fechas, listado por ventana, fetch concurrente de detalles,
// clasificación y agregación.
type UseCase struct {
	sesiones repository.SessionRepository
	clientes ClientFactory
	cfg      config.PipelineConfig
	log      *logger.Logger
}

func NewUseCase(sesiones repository.SessionRepository, clientes ClientFactory, cfg config.PipelineConfig, log *logger.Logger) *UseCase {
	return &UseCase{sesiones: sesiones, clientes: clientes, cfg: cfg, log: log}
}

// Ejecutar corre el pipeline completo para el usuario dado. Devuelve o bien la
// respuesta, o bien una pregunta de desambiguación para el asistente, o error.
// Los fallos al listar movimientos son fatales; los fallos al traer un detalle
// degradan a warning y el cálculo sigue con lo que haya.
func (uc *UseCase) Ejecutar(ctx context.Context, usuario string, req *dto.RendimientoDescomposicionRequest) (*dto.RendimientoDescomposicionResponse, *dto.PreguntaAsistente, error) {
	ses, err := uc.sesiones.Obtener(usuario)
	if err != nil {
		return nil, nil, err
	}
	if ses == nil || ses.Token == "" {
		return nil, nil, domain.ErrNoAutenticado
	}

	cli, err := uc.clientes(ses)
	if err != nil {
		return nil, nil, err
	}

	// fechas: ambas vacías = hoy; una sola suplida rellena la otra
	inicio, fin := req.FechaInicio, req.FechaFin
	if inicio == "" && fin == "" {
		inicio = hoy()
		fin = inicio
	} else if inicio == "" {
		inicio = fin
	} else if fin == "" {
		fin = inicio
	}
	desde, err := parseFecha(inicio)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrEntradaInvalida, err)
	}
	hasta, err := parseFecha(fin)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrEntradaInvalida, err)
	}
	if hasta.Before(desde) {
		return nil, nil, fmt.Errorf("%w: fecha_fin anterior a fecha_inicio", domain.ErrEntradaInvalida)
	}

	granularidad := normalizarGranularidad(req.Granularidad)

	modoAsistente := req.ModoAsistente || req.Texto != ""
	area, err := resolverArea(ctx, cli, req.AreaID, req.AreaNombre, modoAsistente)
	if err != nil {
		return nil, nil, err
	}
	if area.Pregunta != nil {
		return nil, area.Pregunta, nil
	}

	var filtro map[int]struct{}
	if len(req.ProductIDs) > 0 {
		filtro = make(map[int]struct{}, len(req.ProductIDs))
		for _, id := range req.ProductIDs {
			filtro[id] = struct{}{}
		}
	}

	chunkDays := req.ChunkDays
	if chunkDays <= 0 {
		chunkDays = uc.cfg.ChunkDays
	}
	concurrencia := req.MaxConcurrency
	if concurrencia <= 0 {
		concurrencia = uc.cfg.MaxConcurrency
	}
	if concurrencia <= 0 {
		concurrencia = 1
	}

	// listado secuencial por ventana; aquí cualquier fallo aborta
	var ids []int64
	vistos := make(map[int64]bool)
	for _, v := range ventanas(desde, hasta, chunkDays) {
		lote, err := cli.ListarMovimientosPadre(ctx, area.ID, v.desde.Format(formatoFecha), v.hasta.Format(formatoFecha))
		if err != nil {
			return nil, nil, fmt.Errorf("listando movimientos de %s a %s: %w",
				v.desde.Format(formatoFecha), v.hasta.Format(formatoFecha), err)
		}
		for _, id := range lote {
			if !vistos[id] {
				vistos[id] = true
				ids = append(ids, id)
			}
		}
	}

	uc.log.Debug().
		Str("usuario", usuario).
		Int("area_id", area.ID).
		Int("movimientos", len(ids)).
		Int("concurrencia", concurrencia).
		Msg("pipeline de descomposición")

	// un único pool acotado para todos los detalles del rango completo
	acum := nuevoAcumulador(granularidad)
	var warnings []string
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrencia)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			det, err := cli.DetalleMovimiento(gctx, id)
			if err != nil {
				mu.Lock()
				warnings = append(warnings, fmt.Sprintf("No se pudo obtener el detalle del movimiento %d: %v", id, err))
				mu.Unlock()
				return nil
			}
			kpi, warning := clasificarMovimiento(det, filtro)
			mu.Lock()
			acum.agregar(kpi)
			if warning != "" {
				warnings = append(warnings, warning)
			}
			mu.Unlock()
			return nil
		})
	}
	// los workers nunca devuelven error; el grupo solo corta por contexto
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	resumen, series, porProducto, filas := acum.cerrar()
	sort.Strings(warnings)

	resp := &dto.RendimientoDescomposicionResponse{
		Periodo: dto.Periodo{Desde: inicio, Hasta: fin, Granularidad: granularidad},
		Area:    dto.AreaResuelta{ID: area.ID, Nombre: area.Nombre},
		Filtros: dto.Filtros{ProductIDs: req.ProductIDs},
		Resumen: resumen,
		Series:  series,
	}
	if resp.Filtros.ProductIDs == nil {
		resp.Filtros.ProductIDs = []int{}
	}
	if resp.Series == nil {
		resp.Series = []dto.SerieBucket{}
	}
	resp.PorProducto = porProducto
	if resp.PorProducto == nil {
		resp.PorProducto = []dto.ProductoRendimiento{}
	}
	resp.Warnings = warnings
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}

	// tres estados: omitido (modo agregado), [] (detalle no pedido), poblado
	if !req.ModoAgregado {
		detalle := []dto.MovimientoKPIRow{}
		if req.IncluirMovimientos {
			detalle = filas
		}
		resp.Movimientos = &detalle
	}

	return resp, nil, nil
}
