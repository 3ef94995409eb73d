package entity

// Area área de tipo STOCK en Tecopos.
type Area struct {
	ID     int
	Nombre string
}

// Negocio sucursal disponible para un usuario.
type Negocio struct {
	ID     int
	Nombre string
}

// SistemaPrecio sistema de precios configurado en el negocio.
type SistemaPrecio struct {
	ID     int
	Nombre string
}
