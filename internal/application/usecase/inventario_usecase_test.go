package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/internal/infrastructure/memory"
	"github.com/tecobot/tecopos-api/pkg/cache"
	"github.com/tecobot/tecopos-api/pkg/logger"
)

func TestInventario_FiltraDisponibilidadPositiva(t *testing.T) {
	stub := &adminStub{disponibles: []entity.DisponibilidadProducto{
		{Producto: "Arroz", Disponibilidad: 12.345, Medida: "kg"},
		{Producto: "Agotado", Disponibilidad: 0, Medida: "und"},
		{Producto: "Negativo", Disponibilidad: -3, Medida: "und"},
	}}
	uc := NewInventarioUseCase(sesionesDePrueba(t), func(*entity.Sesion) (AdminClient, error) { return stub, nil }, cache.New(), logger.Nop())

	out, err := uc.Totalizar(context.Background(), "ana")
	require.NoError(t, err)

	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Productos, 1)
	assert.Equal(t, "Arroz", out.Productos[0].Producto)
	assert.Equal(t, 12.35, out.Productos[0].Disponibilidad, "la disponibilidad se redondea a 2 decimales")
}

func TestInventario_SinExistencias(t *testing.T) {
	stub := &adminStub{disponibles: []entity.DisponibilidadProducto{
		{Producto: "Agotado", Disponibilidad: 0},
	}}
	uc := NewInventarioUseCase(sesionesDePrueba(t), func(*entity.Sesion) (AdminClient, error) { return stub, nil }, cache.New(), logger.Nop())

	_, err := uc.Totalizar(context.Background(), "ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventario_UsaCache(t *testing.T) {
	stub := &adminStub{disponibles: []entity.DisponibilidadProducto{
		{Producto: "Arroz", Disponibilidad: 5, Medida: "kg"},
	}}
	c := cache.New()
	uc := NewInventarioUseCase(sesionesDePrueba(t), func(*entity.Sesion) (AdminClient, error) { return stub, nil }, c, logger.Nop())

	primero, err := uc.Totalizar(context.Background(), "ana")
	require.NoError(t, err)

	// el segundo llamado no debe tocar upstream: vaciamos el stub y el
	// resultado sigue saliendo del caché
	stub.disponibles = nil
	segundo, err := uc.Totalizar(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, primero, segundo)
}

func TestInventario_SinSesion(t *testing.T) {
	uc := NewInventarioUseCase(memory.NewSessionRepository(), func(*entity.Sesion) (AdminClient, error) { return &adminStub{}, nil }, cache.New(), logger.Nop())

	_, err := uc.Totalizar(context.Background(), "nadie")
	assert.ErrorIs(t, err, domain.ErrNoAutenticado)
}
