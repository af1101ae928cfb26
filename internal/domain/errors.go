package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrInvalidState  = errors.New("transición inválida desde un estado terminal")
	ErrSameWarehouse = errors.New("la bodega origen y destino no pueden ser la misma")
	ErrBadQuantity   = errors.New("la cantidad debe ser un entero positivo")
)
