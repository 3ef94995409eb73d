package rendimiento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

func movimientoDescomposicion() *entity.Movimiento {
	return &entity.Movimiento{
		ID:        101,
		CreadoEn:  "2025-03-10T14:30:00.000Z",
		Operacion: entity.OperacionSalida,
		Categoria: entity.CategoriaDescomposicion,
		Cantidad:  -10, // el padre OUT llega negativo
		Producto:  entity.ProductoRef{ID: 1, Nombre: "Cerdo entero", Tipo: "STOCK", Medida: "kg"},
		Hijos: []entity.MovimientoHijo{
			{
				Operacion: entity.OperacionEntrada,
				Categoria: entity.CategoriaDescomposicion,
				Producto:  entity.ProductoRef{ID: 2, Nombre: "Pierna de cerdo", Tipo: entity.TipoManufacturado, Medida: "kg"},
				Cantidad:  8,
			},
			{
				Operacion: entity.OperacionEntrada,
				Categoria: entity.CategoriaMerma,
				Producto:  entity.ProductoRef{ID: 3, Nombre: "Hueso", Tipo: entity.TipoMerma, Medida: "kg"},
				Cantidad:  1,
			},
		},
	}
}

func TestClasificarMovimiento_RendimientoBasico(t *testing.T) {
	kpi, warning := clasificarMovimiento(movimientoDescomposicion(), nil)

	assert.Empty(t, warning)
	assert.Equal(t, 10.0, kpi.PadreUsado, "la cantidad padre debe usarse en valor absoluto")
	assert.Equal(t, 8.0, kpi.ManufacturadosTotal)
	assert.Equal(t, 1.0, kpi.MermaTotal)
	require.NotNil(t, kpi.Rendimiento)
	assert.Equal(t, 80.0, *kpi.Rendimiento)
	assert.Equal(t, "2025-03-10", kpi.Fecha)
}

func TestClasificarMovimiento_UnidadDistinta_SinRendimientoYUnWarning(t *testing.T) {
	mov := movimientoDescomposicion()
	mov.ID = 77
	mov.Hijos[0].Producto.Medida = "lt"

	kpi, warning := clasificarMovimiento(mov, nil)

	assert.Nil(t, kpi.Rendimiento, "con unidades distintas el rendimiento queda indefinido")
	assert.Contains(t, warning, "movementId=77")
	assert.Contains(t, warning, "padre=kg")
	// los totales se acumulan igual aunque no haya rendimiento
	assert.Equal(t, 8.0, kpi.ManufacturadosTotal)
}

func TestClasificarMovimiento_MedidaPadreAusente_SinWarning(t *testing.T) {
	mov := movimientoDescomposicion()
	mov.Producto.Medida = ""

	kpi, warning := clasificarMovimiento(mov, nil)

	assert.Nil(t, kpi.Rendimiento)
	assert.Empty(t, warning, "sin medida de padre no hay unidad distinta observada")
}

func TestClasificarMovimiento_FiltroDeProductos(t *testing.T) {
	mov := movimientoDescomposicion()
	mov.Hijos = append(mov.Hijos, entity.MovimientoHijo{
		Operacion: entity.OperacionEntrada,
		Categoria: entity.CategoriaDescomposicion,
		Producto:  entity.ProductoRef{ID: 9, Nombre: "Costilla", Tipo: entity.TipoManufacturado, Medida: "kg"},
		Cantidad:  0.5,
	})

	filtro := map[int]struct{}{9: {}}
	kpi, warning := clasificarMovimiento(mov, filtro)

	assert.Empty(t, warning)
	assert.Equal(t, 0.5, kpi.ManufacturadosTotal, "solo el producto del filtro cuenta como manufacturado")
	assert.Len(t, kpi.PorProducto, 1)
	assert.Contains(t, kpi.PorProducto, 9)
	assert.Equal(t, 1.0, kpi.MermaTotal, "la merma nunca se filtra")
}

func TestClasificarMovimiento_PadreCero_SinRendimiento(t *testing.T) {
	mov := movimientoDescomposicion()
	mov.Cantidad = 0

	kpi, warning := clasificarMovimiento(mov, nil)

	assert.Empty(t, warning)
	assert.Nil(t, kpi.Rendimiento, "cantidad padre cero no debe dividir")
}

func TestClasificarMovimiento_HijosNoEntradaSeIgnoran(t *testing.T) {
	mov := movimientoDescomposicion()
	mov.Hijos = append(mov.Hijos, entity.MovimientoHijo{
		Operacion: entity.OperacionSalida,
		Categoria: entity.CategoriaDescomposicion,
		Producto:  entity.ProductoRef{ID: 4, Nombre: "Otro", Tipo: entity.TipoManufacturado, Medida: "kg"},
		Cantidad:  3,
	})

	kpi, _ := clasificarMovimiento(mov, nil)
	assert.Equal(t, 8.0, kpi.ManufacturadosTotal, "solo los hijos ENTRY participan")
}
