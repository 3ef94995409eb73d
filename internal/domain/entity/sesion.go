package entity

import "time"

// Sesion contexto de sesión de un usuario autenticado contra Tecopos.
// Guarda el token upstream, el negocio activo y la región; se conserva entre
// requests para no pedir credenciales en cada llamada.
type Sesion struct {
	Usuario    string
	Token      string
	BusinessID int
	Region     string
	Negocios   map[string]int // nombre -> id, solo cuando hay varias sucursales
	CreadaEn   time.Time
}
