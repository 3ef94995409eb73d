package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoAutenticado       = errors.New("usuario no autenticado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrRegionInvalida      = errors.New("región inválida")
	ErrAreaNoEncontrada    = errors.New("área no encontrada")
	ErrNegocioNoEncontrado = errors.New("negocio no encontrado")
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrCredenciales        = errors.New("credenciales inválidas")
)
