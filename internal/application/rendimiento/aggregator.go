package rendimiento

import (
	"math"
	"sort"

	"github.com/tecobot/tecopos-api/internal/application/dto"
)

// acumulador agrega KPIs de movimientos en tres niveles: global, por bucket
// temporal y por producto manufacturado. No es seguro para uso concurrente;
// el caso de uso lo protege con su propio mutex.
type acumulador struct {
	granularidad string

	padreUsado     float64
	manufacturados float64
	merma          float64

	buckets map[string]*bucketAcumulado
	// por producto: cada producto presente en el desglose de un movimiento
	// recibe el padre usado y la merma completos de ese movimiento
	productos map[int]*productoAcumulado

	filas []dto.MovimientoKPIRow
}

type bucketAcumulado struct {
	padreUsado     float64
	manufacturados float64
	merma          float64
}

type productoAcumulado struct {
	nombre         string
	medida         string
	movimientos    int
	usadoPadre     float64
	manufacturados float64
	merma          float64
	rendimientos   []float64
}

func nuevoAcumulador(granularidad string) *acumulador {
	return &acumulador{
		granularidad: granularidad,
		buckets:      make(map[string]*bucketAcumulado),
		productos:    make(map[int]*productoAcumulado),
	}
}

// agregar incorpora un movimiento clasificado a todos los niveles y registra
// la fila de detalle.
func (ac *acumulador) agregar(kpi *MovimientoKPI) {
	ac.padreUsado += kpi.PadreUsado
	ac.manufacturados += kpi.ManufacturadosTotal
	ac.merma += kpi.MermaTotal

	clave := claveBucket(kpi.CreadoEn, ac.granularidad)
	b, ok := ac.buckets[clave]
	if !ok {
		b = &bucketAcumulado{}
		ac.buckets[clave] = b
	}
	b.padreUsado += kpi.PadreUsado
	b.manufacturados += kpi.ManufacturadosTotal
	b.merma += kpi.MermaTotal

	for id, prod := range kpi.PorProducto {
		p, ok := ac.productos[id]
		if !ok {
			p = &productoAcumulado{}
			ac.productos[id] = p
		}
		p.nombre = prod.Nombre
		p.medida = prod.Medida
		p.movimientos++
		p.usadoPadre += kpi.PadreUsado
		p.manufacturados += prod.Cantidad
		p.merma += kpi.MermaTotal
		if kpi.Rendimiento != nil {
			p.rendimientos = append(p.rendimientos, *kpi.Rendimiento)
		}
	}

	ac.filas = append(ac.filas, dto.MovimientoKPIRow{
		MovementID: kpi.MovimientoID,
		Fecha:      kpi.Fecha,
		Padre: dto.PadreKPI{
			ProductID:   kpi.PadreProductoID,
			ProductName: kpi.PadreProductoNombre,
			Measure:     kpi.PadreMedida,
			Usado:       round4(kpi.PadreUsado),
		},
		ManufacturadosTotal: round4(kpi.ManufacturadosTotal),
		MermaTotal:          round4(kpi.MermaTotal),
		Rendimiento:         kpi.Rendimiento,
	})
}

// cerrar materializa el resumen, la serie ordenada por bucket, las
// estadísticas por producto y las filas de detalle ordenadas por fecha.
func (ac *acumulador) cerrar() (dto.Resumen, []dto.SerieBucket, []dto.ProductoRendimiento, []dto.MovimientoKPIRow) {
	resumen := dto.Resumen{
		PadreUsado:           round4(ac.padreUsado),
		Manufacturados:       round4(ac.manufacturados),
		Merma:                round4(ac.merma),
		RendimientoPonderado: rendimientoDe(ac.manufacturados, ac.padreUsado),
	}

	claves := make([]string, 0, len(ac.buckets))
	for k := range ac.buckets {
		claves = append(claves, k)
	}
	sort.Strings(claves)
	series := make([]dto.SerieBucket, 0, len(claves))
	for _, k := range claves {
		b := ac.buckets[k]
		series = append(series, dto.SerieBucket{
			Bucket:         k,
			PadreUsado:     round4(b.padreUsado),
			Manufacturados: round4(b.manufacturados),
			Merma:          round4(b.merma),
			Rendimiento:    rendimientoDe(b.manufacturados, b.padreUsado),
		})
	}

	ids := make([]int, 0, len(ac.productos))
	for id := range ac.productos {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	porProducto := make([]dto.ProductoRendimiento, 0, len(ids))
	for _, id := range ids {
		p := ac.productos[id]
		prom, min, max, stddev := estadisticas(p.rendimientos)
		porProducto = append(porProducto, dto.ProductoRendimiento{
			ProductID:           id,
			ProductName:         p.nombre,
			Measure:             p.medida,
			Movimientos:         p.movimientos,
			UsadoPadre:          round4(p.usadoPadre),
			Manufacturados:      round4(p.manufacturados),
			Merma:               round4(p.merma),
			RendimientoPromedio: prom,
			RendimientoMin:      min,
			RendimientoMax:      max,
			RendimientoStddev:   stddev,
		})
	}

	filas := make([]dto.MovimientoKPIRow, len(ac.filas))
	copy(filas, ac.filas)
	sort.SliceStable(filas, func(i, j int) bool {
		if filas[i].Fecha != filas[j].Fecha {
			return filas[i].Fecha < filas[j].Fecha
		}
		return filas[i].MovementID < filas[j].MovementID
	})

	return resumen, series, porProducto, filas
}

// rendimientoDe porcentaje manufacturado/padre con guarda de división por cero.
func rendimientoDe(manufacturados, padreUsado float64) *float64 {
	if padreUsado <= 0 {
		return nil
	}
	r := round2(manufacturados / padreUsado * 100)
	return &r
}

// estadisticas media, mínimo, máximo y desviación estándar muestral (n-1) de
// la serie de rendimientos. Todo nil si no hay muestras; stddev 0 con una sola.
func estadisticas(muestras []float64) (prom, min, max, stddev *float64) {
	n := len(muestras)
	if n == 0 {
		return nil, nil, nil, nil
	}

	suma := 0.0
	mn, mx := muestras[0], muestras[0]
	for _, v := range muestras {
		suma += v
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	media := suma / float64(n)

	var desv float64
	if n > 1 {
		var acum float64
		for _, v := range muestras {
			d := v - media
			acum += d * d
		}
		desv = math.Sqrt(acum / float64(n-1))
	}

	p := round2(media)
	a := round2(mn)
	b := round2(mx)
	s := round2(desv)
	return &p, &a, &b, &s
}
