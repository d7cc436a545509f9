package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrVersionConflict = errors.New("la versión del historial cambió desde la lectura")
	ErrEmptyStore      = errors.New("el historial de movimientos está vacío")
)
