package entity

import "github.com/shopspring/decimal"

// Precio precio de un producto dentro de un sistema de precios.
type Precio struct {
	SistemaID int
	Monto     decimal.Decimal
	Moneda    string // codeCurrency: USD, CUP, MLC, ...
}

// Producto producto del catálogo Tecopos con sus precios.
type Producto struct {
	ID      int
	Nombre  string
	Codigo  string
	Medida  string
	Precios []Precio
}

// NuevoProducto datos para crear un producto en Tecopos.
type NuevoProducto struct {
	Nombre      string
	Precio      decimal.Decimal
	Moneda      string
	CategoriaID int
}

// CategoriaVenta categoría de ventas del negocio.
type CategoriaVenta struct {
	ID     int
	Nombre string
}

// DisponibilidadProducto fila del reporte de disponibilidad de stock.
type DisponibilidadProducto struct {
	Producto       string
	Disponibilidad float64
	Medida         string
}
