package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/internal/infrastructure/memory"
	"github.com/tecobot/tecopos-api/pkg/config"
	"github.com/tecobot/tecopos-api/pkg/logger"
)

// upstreamStub implementación de UpstreamAuth para tests.
type upstreamStub struct {
	token      string
	businessID int
	negocios   []entity.Negocio
	errLogin   error
}

func (s *upstreamStub) Login(ctx context.Context, region, usuario, password string) (string, error) {
	if s.errLogin != nil {
		return "", s.errLogin
	}
	return s.token, nil
}

func (s *upstreamStub) InfoUsuario(ctx context.Context, region, token string) (int, error) {
	return s.businessID, nil
}

func (s *upstreamStub) MisSucursales(ctx context.Context, region, token string) ([]entity.Negocio, error) {
	return s.negocios, nil
}

var jwtDePrueba = config.JWTConfig{Secret: "secret-de-test", Expiration: 60, Issuer: "tecopos-api-test"}

func TestLogin_UnaSolaSucursal(t *testing.T) {
	sesiones := memory.NewSessionRepository()
	stub := &upstreamStub{token: "tok", businessID: 7}
	uc := NewUseCase(stub, sesiones, jwtDePrueba, logger.Nop())

	out, err := uc.Login(context.Background(), &dto.LoginRequest{
		Usuario:  "  Ana  ",
		Password: "secreta",
	})
	require.NoError(t, err)

	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, 7, out.BusinessID)
	assert.NotEmpty(t, out.SessionToken)

	// el usuario queda normalizado en minúsculas
	ses, err := sesiones.Obtener("ana")
	require.NoError(t, err)
	require.NotNil(t, ses)
	assert.Equal(t, "tok", ses.Token)
	assert.Equal(t, 7, ses.BusinessID)
	assert.Equal(t, "apidev", ses.Region, "la región por defecto es apidev")
}

func TestLogin_VariasSucursales_PideSeleccion(t *testing.T) {
	sesiones := memory.NewSessionRepository()
	stub := &upstreamStub{token: "tok", businessID: 7, negocios: []entity.Negocio{
		{ID: 1, Nombre: "Centro"},
		{ID: 2, Nombre: "Playa"},
	}}
	uc := NewUseCase(stub, sesiones, jwtDePrueba, logger.Nop())

	out, err := uc.Login(context.Background(), &dto.LoginRequest{Usuario: "ana", Password: "x"})
	require.NoError(t, err)

	assert.Equal(t, "seleccion-necesaria", out.Status)
	assert.Equal(t, []string{"Centro", "Playa"}, out.NegociosDisponibles)
	assert.Zero(t, out.BusinessID)

	ses, _ := sesiones.Obtener("ana")
	require.NotNil(t, ses)
	assert.Zero(t, ses.BusinessID, "sin selección no hay negocio activo")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := NewUseCase(&upstreamStub{errLogin: domain.ErrCredenciales}, memory.NewSessionRepository(), jwtDePrueba, logger.Nop())

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Usuario: "ana", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
}

func TestLogin_SinCredenciales(t *testing.T) {
	uc := NewUseCase(&upstreamStub{}, memory.NewSessionRepository(), jwtDePrueba, logger.Nop())

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Usuario: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestSeleccionarNegocio_Activa(t *testing.T) {
	sesiones := memory.NewSessionRepository()
	require.NoError(t, sesiones.Guardar(&entity.Sesion{
		Usuario:  "ana",
		Token:    "tok",
		Region:   "apidev",
		Negocios: map[string]int{"Centro": 1, "Playa": 2},
	}))
	uc := NewUseCase(&upstreamStub{}, sesiones, jwtDePrueba, logger.Nop())

	out, err := uc.SeleccionarNegocio(context.Background(), "ana", &dto.SeleccionNegocioRequest{NombreNegocio: "Playa"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.BusinessID)

	ses, _ := sesiones.Obtener("ana")
	assert.Equal(t, 2, ses.BusinessID)
}

func TestSeleccionarNegocio_NombreDesconocido(t *testing.T) {
	sesiones := memory.NewSessionRepository()
	require.NoError(t, sesiones.Guardar(&entity.Sesion{
		Usuario:  "ana",
		Token:    "tok",
		Negocios: map[string]int{"Centro": 1},
	}))
	uc := NewUseCase(&upstreamStub{}, sesiones, jwtDePrueba, logger.Nop())

	_, err := uc.SeleccionarNegocio(context.Background(), "ana", &dto.SeleccionNegocioRequest{NombreNegocio: "Sucursal X"})
	require.ErrorIs(t, err, domain.ErrNegocioNoEncontrado)
	assert.Contains(t, err.Error(), "Centro", "el error lista las sucursales disponibles")
}

func TestSeleccionarNegocio_SinSesion(t *testing.T) {
	uc := NewUseCase(&upstreamStub{}, memory.NewSessionRepository(), jwtDePrueba, logger.Nop())

	_, err := uc.SeleccionarNegocio(context.Background(), "nadie", &dto.SeleccionNegocioRequest{NombreNegocio: "Centro"})
	assert.ErrorIs(t, err, domain.ErrNoAutenticado)
}
