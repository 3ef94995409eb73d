package repository

import "github.com/tecobot/tecopos-api/internal/domain/entity"

// SessionRepository define el puerto de almacenamiento de sesiones (DIP).
// Reemplaza el diccionario global por proceso: la implementación puede ser un
// mapa en memoria tras un lock o un caché externo.
type SessionRepository interface {
	Guardar(ses *entity.Sesion) error
	// Obtener devuelve nil (sin error) cuando no existe sesión para el usuario.
	Obtener(usuario string) (*entity.Sesion, error)
	Eliminar(usuario string) error
}
