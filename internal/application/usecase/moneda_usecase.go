package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/internal/domain/repository"
	"github.com/tecobot/tecopos-api/pkg/logger"
)

// MonedaUseCase cambio masivo de moneda de los precios de un sistema de precio.
type MonedaUseCase struct {
	sesiones repository.SessionRepository
	clientes AdminClientFactory
	log      *logger.Logger
}

func NewMonedaUseCase(sesiones repository.SessionRepository, clientes AdminClientFactory, log *logger.Logger) *MonedaUseCase {
	return &MonedaUseCase{sesiones: sesiones, clientes: clientes, log: log}
}

// Cambiar ejecuta el flujo en tres modos: sin system_price_id lista los
// sistemas disponibles; sin confirmar simula y devuelve los candidatos; con
// confirmar aplica el PATCH producto a producto.
func (uc *MonedaUseCase) Cambiar(ctx context.Context, usuario string, req *dto.CambioMonedaRequest) (*dto.CambioMonedaResponse, error) {
	actual := strings.ToUpper(strings.TrimSpace(req.MonedaActual))
	deseada := strings.ToUpper(strings.TrimSpace(req.MonedaDeseada))
	if actual == "" || deseada == "" {
		return nil, fmt.Errorf("%w: moneda_actual y moneda_deseada son obligatorias", domain.ErrEntradaInvalida)
	}
	if actual == deseada {
		return nil, fmt.Errorf("%w: la moneda deseada es igual a la actual", domain.ErrEntradaInvalida)
	}

	ses, err := uc.sesiones.Obtener(usuario)
	if err != nil {
		return nil, err
	}
	if ses == nil || ses.Token == "" {
		return nil, domain.ErrNoAutenticado
	}
	cli, err := uc.clientes(ses)
	if err != nil {
		return nil, err
	}

	sistemas, err := cli.MiNegocio(ctx)
	if err != nil {
		return nil, err
	}

	if req.SystemPriceID == 0 {
		nombres := make([]string, 0, len(sistemas))
		for _, s := range sistemas {
			nombres = append(nombres, fmt.Sprintf("%s (id=%d)", s.Nombre, s.ID))
		}
		return &dto.CambioMonedaResponse{
			Status:              "seleccion_requerida",
			Mensaje:             "Indica el sistema de precio con 'system_price_id'.",
			SistemasDisponibles: nombres,
		}, nil
	}

	valido := false
	for _, s := range sistemas {
		if s.ID == req.SystemPriceID {
			valido = true
			break
		}
	}
	if !valido {
		return nil, fmt.Errorf("%w: system_price_id %d no existe en el negocio", domain.ErrEntradaInvalida, req.SystemPriceID)
	}

	candidatos, err := uc.buscarCandidatos(ctx, cli, req.SystemPriceID, actual)
	if err != nil {
		return nil, err
	}
	if len(candidatos) == 0 {
		return &dto.CambioMonedaResponse{
			Status:  "sin_cambios",
			Mensaje: fmt.Sprintf("Ningún producto tiene precios en %s para ese sistema.", actual),
		}, nil
	}

	if !req.Confirmar {
		return &dto.CambioMonedaResponse{
			Status:               "simulacion",
			Mensaje:              fmt.Sprintf("%d productos cambiarían de %s a %s. Repite con confirmar=true.", len(candidatos), actual, deseada),
			ProductosParaCambiar: candidatos,
		}, nil
	}

	actualizados := make([]string, 0, len(candidatos))
	fallidos := 0
	for _, c := range candidatos {
		precio := entity.Precio{SistemaID: c.SystemPriceID, Monto: c.Price, Moneda: deseada}
		if err := cli.ActualizarPrecioProducto(ctx, c.ID, precio); err != nil {
			fallidos++
			uc.log.Warn().Err(err).Int("producto_id", c.ID).Msg("cambio de moneda fallido")
			continue
		}
		actualizados = append(actualizados, c.Nombre)
	}

	mensaje := fmt.Sprintf("%d productos actualizados a %s.", len(actualizados), deseada)
	if fallidos > 0 {
		mensaje = fmt.Sprintf("%s %d fallaron y conservan su moneda.", mensaje, fallidos)
	}
	return &dto.CambioMonedaResponse{
		Status:                "ok",
		Mensaje:               mensaje,
		ProductosActualizados: actualizados,
	}, nil
}

// buscarCandidatos pagina el catálogo completo y retiene los productos con
// algún precio del sistema elegido en la moneda actual.
func (uc *MonedaUseCase) buscarCandidatos(ctx context.Context, cli AdminClient, sistemaID int, moneda string) ([]dto.ProductoCandidato, error) {
	var candidatos []dto.ProductoCandidato
	for page := 1; ; page++ {
		productos, err := cli.ListarProductos(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(productos) == 0 {
			break
		}
		for _, p := range productos {
			for _, precio := range p.Precios {
				if precio.SistemaID == sistemaID && strings.EqualFold(precio.Moneda, moneda) {
					candidatos = append(candidatos, dto.ProductoCandidato{
						ID:            p.ID,
						Nombre:        p.Nombre,
						SystemPriceID: precio.SistemaID,
						Price:         precio.Monto,
						CodeCurrency:  precio.Moneda,
					})
					break
				}
			}
		}
	}
	return candidatos, nil
}
