package memory

import (
	"sync"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/internal/domain/repository"
)

// SessionRepository implementación en memoria del puerto de sesiones.
// Guarda copias para que los callers no compartan el struct almacenado.
// El estado vive en el proceso: en un despliegue multi-instancia debe
// sustituirse por un backend compartido detrás del mismo puerto.
type SessionRepository struct {
	mu       sync.RWMutex
	sesiones map[string]entity.Sesion
}

var _ repository.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository construye el repositorio vacío.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sesiones: make(map[string]entity.Sesion)}
}

// Guardar persiste (o reemplaza) la sesión del usuario.
func (r *SessionRepository) Guardar(ses *entity.Sesion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *ses
	if ses.Negocios != nil {
		copia.Negocios = make(map[string]int, len(ses.Negocios))
		for k, v := range ses.Negocios {
			copia.Negocios[k] = v
		}
	}
	r.sesiones[ses.Usuario] = copia
	return nil
}

// Obtener devuelve la sesión del usuario o nil si no existe.
func (r *SessionRepository) Obtener(usuario string) (*entity.Sesion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ses, ok := r.sesiones[usuario]
	if !ok {
		return nil, nil
	}
	copia := ses
	if ses.Negocios != nil {
		copia.Negocios = make(map[string]int, len(ses.Negocios))
		for k, v := range ses.Negocios {
			copia.Negocios[k] = v
		}
	}
	return &copia, nil
}

// Eliminar borra la sesión del usuario; es idempotente.
func (r *SessionRepository) Eliminar(usuario string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sesiones, usuario)
	return nil
}
