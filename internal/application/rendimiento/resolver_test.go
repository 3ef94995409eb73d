package rendimiento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

func TestNormalizar(t *testing.T) {
	assert.Equal(t, "almacen central", normalizar("  Almacén   CENTRAL "))
	assert.Equal(t, "cocina", normalizar("COCINA"))
	assert.Equal(t, "", normalizar("   "))
}

func TestBuscarPorNombre_ExactaConAcentos(t *testing.T) {
	areas := []entity.Area{
		{ID: 1, Nombre: "Almacén Central"},
		{ID: 2, Nombre: "Almacén Secundario"},
	}

	res, err := buscarPorNombre(areas, "almacen   central")
	require.NoError(t, err)
	require.Nil(t, res.Pregunta)
	assert.Equal(t, 1, res.ID)
	assert.Equal(t, "Almacén Central", res.Nombre)
}

func TestBuscarPorNombre_PrefijoUnico(t *testing.T) {
	areas := []entity.Area{
		{ID: 1, Nombre: "Cocina Principal"},
		{ID: 2, Nombre: "Bar"},
	}

	res, err := buscarPorNombre(areas, "coci")
	require.NoError(t, err)
	require.Nil(t, res.Pregunta)
	assert.Equal(t, 1, res.ID, "una única candidata se auto-selecciona")
}

func TestBuscarPorNombre_VariasCandidatas_Pregunta(t *testing.T) {
	areas := []entity.Area{
		{ID: 1, Nombre: "Almacén Central"},
		{ID: 2, Nombre: "Almacén Secundario"},
		{ID: 3, Nombre: "Mini Almacén"},
	}

	res, err := buscarPorNombre(areas, "almacen")
	require.NoError(t, err)
	require.NotNil(t, res.Pregunta, "varias candidatas deben producir una pregunta")
	assert.Equal(t, "ask", res.Pregunta.Status)
	assert.Len(t, res.Pregunta.Options, 3)
	// los prefijos van antes que los substrings
	assert.Equal(t, 1, res.Pregunta.Options[0].ID)
	assert.Equal(t, 2, res.Pregunta.Options[1].ID)
	assert.Equal(t, 3, res.Pregunta.Options[2].ID)
}

func TestBuscarPorNombre_SinCandidatas(t *testing.T) {
	areas := []entity.Area{{ID: 1, Nombre: "Cocina"}}

	_, err := buscarPorNombre(areas, "bodega")
	assert.ErrorIs(t, err, domain.ErrAreaNoEncontrada)
}

func TestBuscarPorNombre_MasDeDiezCandidatasSeRecortan(t *testing.T) {
	var areas []entity.Area
	for i := 1; i <= 14; i++ {
		areas = append(areas, entity.Area{ID: i, Nombre: "Almacén"})
	}
	// todas exactas tras normalizar
	res, err := buscarPorNombre(areas, "almacén")
	require.NoError(t, err)
	require.NotNil(t, res.Pregunta)
	assert.Len(t, res.Pregunta.Options, 10, "las opciones de la pregunta se limitan a 10")
}
