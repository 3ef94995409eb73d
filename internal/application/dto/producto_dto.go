package dto

import "github.com/shopspring/decimal"

// CrearProductoRequest alta (o reutilización) de un producto por nombre.
type CrearProductoRequest struct {
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
	Moneda string          `json:"moneda"`
}

// CrearProductoResponse resultado del alta; Creado es false si ya existía.
type CrearProductoResponse struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria,omitempty"`
	Creado    bool   `json:"creado"`
}

// ProductoResponse producto encontrado en el catálogo.
type ProductoResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo,omitempty"`
	Medida string `json:"medida,omitempty"`
}
