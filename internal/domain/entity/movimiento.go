package entity

// Operaciones, categorías y tipos de producto de los movimientos Tecopos.
const (
	OperacionSalida  = "OUT"
	OperacionEntrada = "ENTRY"

	CategoriaDescomposicion = "DESCOMPOSITION"
	CategoriaMerma          = "WASTE"

	TipoManufacturado = "MANUFACTURED"
	TipoMerma         = "WASTE"
)

// ProductoRef referencia de producto embebida en un movimiento.
type ProductoRef struct {
	ID     int
	Nombre string
	Tipo   string // STOCK, MANUFACTURED, WASTE, ...
	Medida string // unidad de medida (kg, lt, und, ...)
}

// MovimientoHijo línea anidada bajo el detalle de un movimiento padre:
// producto manufacturado resultante o merma.
type MovimientoHijo struct {
	Operacion string
	Categoria string
	Producto  ProductoRef
	Cantidad  float64
}

// Movimiento detalle de un movimiento de inventario. Para el pipeline de
// rendimiento el padre es siempre OUT/DESCOMPOSITION con sus hijos.
// CreadoEn conserva el timestamp ISO crudo del upstream; el parseo tolerante
// ocurre al derivar la clave de bucket.
type Movimiento struct {
	ID        int64
	CreadoEn  string
	Operacion string
	Categoria string
	Cantidad  float64 // con signo; el padre OUT viene negativo
	Producto  ProductoRef
	Hijos     []MovimientoHijo
}
