package dto

// ProductoInventario fila del inventario totalizado.
type ProductoInventario struct {
	Producto       string  `json:"Producto"`
	Disponibilidad float64 `json:"Disponibilidad"`
	Medida         string  `json:"Medida"`
}

// InventarioResponse inventario con disponibilidad positiva.
type InventarioResponse struct {
	Total     int                  `json:"total"`
	Productos []ProductoInventario `json:"productos"`
}
