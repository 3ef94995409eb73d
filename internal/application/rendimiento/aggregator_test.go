package rendimiento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kpiDePrueba(id int64, fecha string, padre, manufacturado, merma float64) *MovimientoKPI {
	kpi := &MovimientoKPI{
		MovimientoID:        id,
		Fecha:               fecha[:10],
		CreadoEn:            fecha,
		PadreProductoID:     1,
		PadreProductoNombre: "Cerdo entero",
		PadreMedida:         "kg",
		PadreUsado:          padre,
		ManufacturadosTotal: manufacturado,
		MermaTotal:          merma,
		PorProducto: map[int]*ManufacturadoProducto{
			2: {Nombre: "Pierna de cerdo", Medida: "kg", Cantidad: manufacturado},
		},
	}
	if padre > 0 {
		r := round2(manufacturado / padre * 100)
		kpi.Rendimiento = &r
	}
	return kpi
}

func TestAcumulador_ResumenYSerieConsistentes(t *testing.T) {
	ac := nuevoAcumulador(GranularidadDia)
	ac.agregar(kpiDePrueba(1, "2025-03-10T08:00:00.000Z", 10, 8, 1))
	ac.agregar(kpiDePrueba(2, "2025-03-11T08:00:00.000Z", 20, 15, 2))

	resumen, series, _, filas := ac.cerrar()

	assert.Equal(t, 30.0, resumen.PadreUsado)
	assert.Equal(t, 23.0, resumen.Manufacturados)
	assert.Equal(t, 3.0, resumen.Merma)
	require.NotNil(t, resumen.RendimientoPonderado)
	assert.Equal(t, 76.67, *resumen.RendimientoPonderado, "ponderado = 23/30*100 redondeado a 2")

	// los buckets deben sumar lo mismo que el resumen
	var padreBuckets float64
	for _, s := range series {
		padreBuckets += s.PadreUsado
	}
	assert.Equal(t, resumen.PadreUsado, padreBuckets)

	require.Len(t, series, 2)
	assert.Equal(t, "2025-03-10", series[0].Bucket, "la serie va ordenada por clave de bucket")
	assert.Equal(t, "2025-03-11", series[1].Bucket)

	require.Len(t, filas, 2)
	assert.Equal(t, int64(1), filas[0].MovementID)
}

func TestAcumulador_SinMovimientos(t *testing.T) {
	ac := nuevoAcumulador(GranularidadDia)
	resumen, series, porProducto, filas := ac.cerrar()

	assert.Zero(t, resumen.PadreUsado)
	assert.Nil(t, resumen.RendimientoPonderado, "sin cantidad padre no hay porcentaje")
	assert.Empty(t, series)
	assert.Empty(t, porProducto)
	assert.Empty(t, filas)
}

func TestAcumulador_AtribucionCompletaPorProducto(t *testing.T) {
	// un movimiento con dos productos manufacturados: ambos reciben el padre
	// usado y la merma completos del movimiento
	kpi := kpiDePrueba(5, "2025-03-10T08:00:00.000Z", 10, 8, 1)
	kpi.PorProducto[7] = &ManufacturadoProducto{Nombre: "Costilla", Medida: "kg", Cantidad: 2}

	ac := nuevoAcumulador(GranularidadDia)
	ac.agregar(kpi)
	_, _, porProducto, _ := ac.cerrar()

	require.Len(t, porProducto, 2)
	for _, p := range porProducto {
		assert.Equal(t, 10.0, p.UsadoPadre)
		assert.Equal(t, 1.0, p.Merma)
		assert.Equal(t, 1, p.Movimientos)
	}
	// ordenado por id de producto
	assert.Equal(t, 2, porProducto[0].ProductID)
	assert.Equal(t, 7, porProducto[1].ProductID)
}

func TestAcumulador_EstadisticasPorProducto(t *testing.T) {
	ac := nuevoAcumulador(GranularidadDia)
	ac.agregar(kpiDePrueba(1, "2025-03-10T08:00:00.000Z", 10, 8, 0))  // 80%
	ac.agregar(kpiDePrueba(2, "2025-03-11T08:00:00.000Z", 10, 6, 0))  // 60%
	ac.agregar(kpiDePrueba(3, "2025-03-12T08:00:00.000Z", 10, 10, 0)) // 100%

	_, _, porProducto, _ := ac.cerrar()
	require.Len(t, porProducto, 1)
	p := porProducto[0]

	require.NotNil(t, p.RendimientoPromedio)
	assert.Equal(t, 80.0, *p.RendimientoPromedio)
	assert.Equal(t, 60.0, *p.RendimientoMin)
	assert.Equal(t, 100.0, *p.RendimientoMax)
	assert.Equal(t, 20.0, *p.RendimientoStddev, "desviación muestral con divisor n-1")
}

func TestEstadisticas_UnaMuestra_StddevCero(t *testing.T) {
	prom, min, max, stddev := estadisticas([]float64{75})

	require.NotNil(t, prom)
	assert.Equal(t, 75.0, *prom)
	assert.Equal(t, 75.0, *min)
	assert.Equal(t, 75.0, *max)
	require.NotNil(t, stddev)
	assert.Zero(t, *stddev, "con una sola muestra la desviación es 0, no NaN")
}

func TestEstadisticas_SinMuestras_TodoNil(t *testing.T) {
	prom, min, max, stddev := estadisticas(nil)
	assert.Nil(t, prom)
	assert.Nil(t, min)
	assert.Nil(t, max)
	assert.Nil(t, stddev)
}

func TestAcumulador_GranularidadMes(t *testing.T) {
	ac := nuevoAcumulador(GranularidadMes)
	ac.agregar(kpiDePrueba(1, "2025-03-10T08:00:00.000Z", 10, 8, 0))
	ac.agregar(kpiDePrueba(2, "2025-03-25T08:00:00.000Z", 10, 6, 0))
	ac.agregar(kpiDePrueba(3, "2025-04-02T08:00:00.000Z", 10, 9, 0))

	_, series, _, _ := ac.cerrar()
	require.Len(t, series, 2)
	assert.Equal(t, "2025-03", series[0].Bucket)
	assert.Equal(t, "2025-04", series[1].Bucket)
	assert.Equal(t, 20.0, series[0].PadreUsado)
}
