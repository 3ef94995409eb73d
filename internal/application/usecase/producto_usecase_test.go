package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/pkg/logger"
)

func TestProducto_ReutilizaExistente(t *testing.T) {
	stub := &adminStub{encontrados: []entity.Producto{{ID: 5, Nombre: "Refresco de Cola"}}}
	uc := NewProductoUseCase(sesionesDePrueba(t), func(*entity.Sesion) (AdminClient, error) { return stub, nil }, logger.Nop())

	out, err := uc.Crear(context.Background(), "ana", &dto.CrearProductoRequest{
		Nombre: "refresco  de cola",
		Precio: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.False(t, out.Creado, "mismo nombre normalizado reutiliza el producto")
	assert.Equal(t, 5, out.ID)
	assert.Empty(t, stub.creados)
}

func TestProducto_CreaConCategoriaInferida(t *testing.T) {
	stub := &adminStub{
		categorias: []entity.CategoriaVenta{{ID: 3, Nombre: "Bebidas"}},
		creadoID:   42,
	}
	uc := NewProductoUseCase(sesionesDePrueba(t), func(*entity.Sesion) (AdminClient, error) { return stub, nil }, logger.Nop())

	out, err := uc.Crear(context.Background(), "ana", &dto.CrearProductoRequest{
		Nombre: "Jugo de Mango",
		Precio: decimal.NewFromInt(80),
		Moneda: "cup",
	})
	require.NoError(t, err)
	assert.True(t, out.Creado)
	assert.Equal(t, 42, out.ID)
	assert.Equal(t, "Bebidas", out.Categoria)

	require.Len(t, stub.creados, 1)
	assert.Equal(t, 3, stub.creados[0].CategoriaID, "reutiliza la categoría existente del negocio")
	assert.Equal(t, "CUP", stub.creados[0].Moneda)
	assert.Empty(t, stub.categoriasNew)
}

func TestProducto_CreaCategoriaSiNoExiste(t *testing.T) {
	stub := &adminStub{creadoID: 43, categoriaID: 9}
	uc := NewProductoUseCase(sesionesDePrueba(t), func(*entity.Sesion) (AdminClient, error) { return stub, nil }, logger.Nop())

	out, err := uc.Crear(context.Background(), "ana", &dto.CrearProductoRequest{
		Nombre: "Queso Gouda",
		Precio: decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	assert.Equal(t, "Lácteos", out.Categoria)
	assert.Equal(t, []string{"Lácteos"}, stub.categoriasNew)
	require.Len(t, stub.creados, 1)
	assert.Equal(t, 9, stub.creados[0].CategoriaID)
}

func TestProducto_SinPalabraClave_CategoriaPorDefecto(t *testing.T) {
	assert.Equal(t, "General", inferirCategoria("Tornillos"))
}

func TestProducto_NombreVacio(t *testing.T) {
	uc := NewProductoUseCase(sesionesDePrueba(t), func(*entity.Sesion) (AdminClient, error) { return &adminStub{}, nil }, logger.Nop())

	_, err := uc.Crear(context.Background(), "ana", &dto.CrearProductoRequest{Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestProducto_Buscar(t *testing.T) {
	stub := &adminStub{encontrados: []entity.Producto{
		{ID: 1, Nombre: "Arroz", Medida: "kg"},
	}}
	uc := NewProductoUseCase(sesionesDePrueba(t), func(*entity.Sesion) (AdminClient, error) { return stub, nil }, logger.Nop())

	out, err := uc.Buscar(context.Background(), "ana", "arroz")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Arroz", out[0].Nombre)
}
