package rendimiento

import (
	"fmt"
	"math"
	"sort"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

// ManufacturadoProducto acumulado de un producto manufacturado dentro de un movimiento.
type ManufacturadoProducto struct {
	Nombre   string
	Medida   string
	Cantidad float64
}

// MovimientoKPI clasificación de un movimiento padre OUT/DESCOMPOSITION:
// cantidad padre usada, total manufacturado, merma, desglose por producto y
// rendimiento porcentual (nil cuando queda indefinido).
type MovimientoKPI struct {
	MovimientoID        int64
	Fecha               string // YYYY-MM-DD derivado de CreadoEn
	CreadoEn            string
	PadreProductoID     int
	PadreProductoNombre string
	PadreMedida         string
	PadreUsado          float64
	ManufacturadosTotal float64
	MermaTotal          float64
	Rendimiento         *float64
	PorProducto         map[int]*ManufacturadoProducto
}

// clasificarMovimiento inspecciona los hijos del detalle y reparte cantidades
// entre manufacturados y merma.
//
// Manufacturado: ENTRY/DESCOMPOSITION con producto MANUFACTURED; el filtro de
// productos (si llega) solo aplica aquí. Merma: ENTRY con tipo o categoría
// WASTE, nunca filtrada. El rendimiento se calcula únicamente si la cantidad
// padre es positiva y todos los hijos manufacturados comparten la unidad del
// padre; una unidad distinta lo deja indefinido y genera exactamente un
// warning con el id del movimiento, jamás se convierte la unidad.
func clasificarMovimiento(det *entity.Movimiento, filtro map[int]struct{}) (*MovimientoKPI, string) {
	kpi := &MovimientoKPI{
		MovimientoID:        det.ID,
		CreadoEn:            det.CreadoEn,
		PadreProductoID:     det.Producto.ID,
		PadreProductoNombre: det.Producto.Nombre,
		PadreMedida:         det.Producto.Medida,
		PadreUsado:          math.Abs(det.Cantidad),
		PorProducto:         make(map[int]*ManufacturadoProducto),
	}
	if len(det.CreadoEn) >= 10 {
		kpi.Fecha = det.CreadoEn[:10]
	}

	for _, h := range det.Hijos {
		if h.Operacion != entity.OperacionEntrada {
			continue
		}
		if h.Categoria == entity.CategoriaDescomposicion && h.Producto.Tipo == entity.TipoManufacturado {
			if filtro != nil {
				if _, ok := filtro[h.Producto.ID]; !ok {
					continue
				}
			}
			kpi.ManufacturadosTotal += h.Cantidad
			p, ok := kpi.PorProducto[h.Producto.ID]
			if !ok {
				p = &ManufacturadoProducto{}
				kpi.PorProducto[h.Producto.ID] = p
			}
			p.Nombre = h.Producto.Nombre
			p.Medida = h.Producto.Medida
			p.Cantidad += h.Cantidad
			continue
		}
		if h.Producto.Tipo == entity.TipoMerma || h.Categoria == entity.CategoriaMerma {
			kpi.MermaTotal += h.Cantidad
		}
	}

	if unidadesCoinciden(kpi) {
		if kpi.PadreUsado > 0 {
			r := round2(kpi.ManufacturadosTotal / kpi.PadreUsado * 100)
			kpi.Rendimiento = &r
		}
		return kpi, ""
	}

	// rendimiento indefinido; el warning solo aplica si de verdad se observó
	// una unidad distinta (no cuando simplemente falta la medida)
	if !hayUnidadDistinta(kpi) {
		return kpi, ""
	}
	medidas := make([]string, 0, len(kpi.PorProducto))
	for _, p := range kpi.PorProducto {
		medidas = append(medidas, p.Medida)
	}
	sort.Strings(medidas)
	warning := fmt.Sprintf("Unidades distintas en movementId=%d: padre=%s, hijos=%v",
		det.ID, kpi.PadreMedida, medidas)
	return kpi, warning
}

// unidadesCoinciden exige medida de padre presente y que todo hijo
// manufacturado con cantidad positiva use la misma.
func unidadesCoinciden(kpi *MovimientoKPI) bool {
	if kpi.PadreMedida == "" {
		return false
	}
	for _, p := range kpi.PorProducto {
		if p.Cantidad > 0 && p.Medida != kpi.PadreMedida {
			return false
		}
	}
	return true
}

func hayUnidadDistinta(kpi *MovimientoKPI) bool {
	if kpi.PadreMedida == "" {
		return false
	}
	for _, p := range kpi.PorProducto {
		if p.Medida != "" && p.Medida != kpi.PadreMedida {
			return true
		}
	}
	return false
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
