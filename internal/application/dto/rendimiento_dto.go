package dto

// RendimientoDescomposicionRequest petición del pipeline de rendimiento de
// descomposición. Fechas en YYYY-MM-DD; ambas omitidas = hoy; una sola
// suplida rellena la otra.
type RendimientoDescomposicionRequest struct {
	AreaID             int    `json:"area_id"`
	AreaNombre         string `json:"area_nombre"`
	FechaInicio        string `json:"fecha_inicio"`
	FechaFin           string `json:"fecha_fin"`
	Granularidad       string `json:"granularidad"` // DIA | SEMANA | MES
	ProductIDs         []int  `json:"product_ids"`
	IncluirMovimientos bool   `json:"incluir_movimientos"`
	ModoAsistente      bool   `json:"modo_asistente"`
	Texto              string `json:"texto"` // texto libre del asistente; activa modo asistente
	ChunkDays          int    `json:"chunk_days"`
	MaxConcurrency     int    `json:"max_concurrency"`
	ModoAgregado       bool   `json:"modo_agregado"` // fuerza respuesta solo agregada
}

// Periodo rango de fechas y granularidad aplicados.
type Periodo struct {
	Desde        string `json:"desde"`
	Hasta        string `json:"hasta"`
	Granularidad string `json:"granularidad"`
}

// AreaResuelta área sobre la que se calculó el reporte.
type AreaResuelta struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Filtros filtros aplicados al cálculo.
type Filtros struct {
	ProductIDs []int `json:"product_ids"`
}

// Resumen agregados globales del periodo. El rendimiento ponderado es nil
// cuando no hubo cantidad padre (evita división por cero).
type Resumen struct {
	PadreUsado           float64  `json:"padre_usado"`
	Manufacturados       float64  `json:"manufacturados"`
	Merma                float64  `json:"merma"`
	RendimientoPonderado *float64 `json:"rendimiento_ponderado_porcentaje"`
}

// SerieBucket fila de la serie temporal por bucket (DIA/SEMANA/MES).
type SerieBucket struct {
	Bucket         string   `json:"bucket"`
	PadreUsado     float64  `json:"padre_usado"`
	Manufacturados float64  `json:"manufacturados"`
	Merma          float64  `json:"merma"`
	Rendimiento    *float64 `json:"rendimiento_porcentaje"`
}

// ProductoRendimiento estadísticas por producto manufacturado.
type ProductoRendimiento struct {
	ProductID           int      `json:"productId"`
	ProductName         string   `json:"productName"`
	Measure             string   `json:"measure"`
	Movimientos         int      `json:"movimientos"`
	UsadoPadre          float64  `json:"usado_padre"`
	Manufacturados      float64  `json:"manufacturados"`
	Merma               float64  `json:"merma"`
	RendimientoPromedio *float64 `json:"rendimiento_promedio"`
	RendimientoMin      *float64 `json:"rendimiento_min"`
	RendimientoMax      *float64 `json:"rendimiento_max"`
	RendimientoStddev   *float64 `json:"rendimiento_stddev"`
}

// PadreKPI datos del movimiento padre en una fila de detalle.
type PadreKPI struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Measure     string  `json:"measure"`
	Usado       float64 `json:"usado"`
}

// MovimientoKPIRow fila de detalle por movimiento (solo con incluir_movimientos).
type MovimientoKPIRow struct {
	MovementID          int64    `json:"movementId"`
	Fecha               string   `json:"fecha"`
	Padre               PadreKPI `json:"padre"`
	ManufacturadosTotal float64  `json:"manufacturados_total"`
	MermaTotal          float64  `json:"merma_total"`
	Rendimiento         *float64 `json:"rendimiento_porcentaje"`
}

// RendimientoDescomposicionResponse respuesta completa del pipeline.
// Movimientos es un puntero para distinguir tres estados: poblado, lista
// vacía (detalle no pedido) y omitido por completo (modo agregado).
type RendimientoDescomposicionResponse struct {
	Periodo     Periodo               `json:"periodo"`
	Area        AreaResuelta          `json:"area"`
	Filtros     Filtros               `json:"filtros"`
	Resumen     Resumen               `json:"resumen"`
	Series      []SerieBucket         `json:"series"`
	PorProducto []ProductoRendimiento `json:"por_producto"`
	Movimientos *[]MovimientoKPIRow   `json:"movimientos,omitempty"`
	Warnings    []string              `json:"warnings"`
}
