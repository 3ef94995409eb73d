package auth

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/internal/domain/repository"
	"github.com/tecobot/tecopos-api/pkg/config"
	"github.com/tecobot/tecopos-api/pkg/jwt"
	"github.com/tecobot/tecopos-api/pkg/logger"
)

// UseCase gestiona el ciclo de vida de la sesión: login contra Tecopos,
// selección de sucursal y emisión del token de sesión propio.
type UseCase struct {
	upstream UpstreamAuth
	sesiones repository.SessionRepository
	jwtCfg   config.JWTConfig
	log      *logger.Logger
}

func NewUseCase(upstream UpstreamAuth, sesiones repository.SessionRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{upstream: upstream, sesiones: sesiones, jwtCfg: jwtCfg, log: log}
}

// Login autentica contra Tecopos, persiste la sesión y emite un JWT propio.
// Con una sola sucursal (o ninguna) el negocio principal queda activo; con
// varias, la respuesta pide elegir sucursal y la sesión queda sin negocio.
func (uc *UseCase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario := strings.ToLower(strings.TrimSpace(req.Usuario))
	if usuario == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: usuario y password son obligatorios", domain.ErrEntradaInvalida)
	}
	region := strings.TrimSpace(req.Region)
	if region == "" {
		region = "apidev"
	}

	token, err := uc.upstream.Login(ctx, region, usuario, req.Password)
	if err != nil {
		return nil, err
	}

	businessID, err := uc.upstream.InfoUsuario(ctx, region, token)
	if err != nil {
		return nil, err
	}

	negocios, err := uc.upstream.MisSucursales(ctx, region, token)
	if err != nil {
		return nil, err
	}

	ses := &entity.Sesion{
		Usuario:  usuario,
		Token:    token,
		Region:   region,
		CreadaEn: time.Now(),
	}

	resp := &dto.LoginResponse{}
	if len(negocios) > 1 {
		ses.Negocios = make(map[string]int, len(negocios))
		nombres := make([]string, 0, len(negocios))
		for _, n := range negocios {
			ses.Negocios[n.Nombre] = n.ID
			nombres = append(nombres, n.Nombre)
		}
		sort.Strings(nombres)
		resp.Status = "seleccion-necesaria"
		resp.Mensaje = "Tienes varias sucursales. Elige una con /api/auth/negocio."
		resp.NegociosDisponibles = nombres
	} else {
		if len(negocios) == 1 {
			businessID = negocios[0].ID
		}
		ses.BusinessID = businessID
		resp.Status = "ok"
		resp.Mensaje = "Sesión iniciada."
		resp.BusinessID = businessID
	}

	if err := uc.sesiones.Guardar(ses); err != nil {
		return nil, err
	}

	sessionToken, err := jwt.Generate(uc.jwtCfg.Secret, usuario, region, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("emitiendo token de sesión: %w", err)
	}
	resp.SessionToken = sessionToken

	uc.log.Info().Str("usuario", usuario).Str("region", region).
		Int("businessId", ses.BusinessID).Msg("login")
	return resp, nil
}

// SeleccionarNegocio activa la sucursal elegida por nombre exacto. Un nombre
// desconocido devuelve las opciones disponibles dentro del error.
func (uc *UseCase) SeleccionarNegocio(ctx context.Context, usuario string, req *dto.SeleccionNegocioRequest) (*dto.SeleccionNegocioResponse, error) {
	ses, err := uc.sesiones.Obtener(usuario)
	if err != nil {
		return nil, err
	}
	if ses == nil || ses.Token == "" {
		return nil, domain.ErrNoAutenticado
	}

	nombre := strings.TrimSpace(req.NombreNegocio)
	if nombre == "" {
		return nil, fmt.Errorf("%w: falta 'nombre_negocio'", domain.ErrEntradaInvalida)
	}

	id, ok := ses.Negocios[nombre]
	if !ok {
		// segunda pasada tolerante a mayúsculas y espacios
		for n, nid := range ses.Negocios {
			if strings.EqualFold(strings.TrimSpace(n), nombre) {
				id, ok = nid, true
				break
			}
		}
	}
	if !ok {
		disponibles := make([]string, 0, len(ses.Negocios))
		for n := range ses.Negocios {
			disponibles = append(disponibles, n)
		}
		sort.Strings(disponibles)
		return nil, fmt.Errorf("%w: %q (disponibles: %s)",
			domain.ErrNegocioNoEncontrado, nombre, strings.Join(disponibles, ", "))
	}

	ses.BusinessID = id
	if err := uc.sesiones.Guardar(ses); err != nil {
		return nil, err
	}

	uc.log.Info().Str("usuario", usuario).Int("businessId", id).Msg("sucursal activa")
	return &dto.SeleccionNegocioResponse{
		Status:     "ok",
		Mensaje:    fmt.Sprintf("Negocio %q activo.", nombre),
		BusinessID: id,
	}, nil
}
