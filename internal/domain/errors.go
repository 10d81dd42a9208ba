package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
//
// Taxonomía: ErrValidation para entrada de usuario inválida, ErrPersistence
// para fallos del almacén, ErrComputation para valores no numéricos que
// llegan a la calculadora. ErrNotFound y ErrConflict envuelven ErrPersistence
// para que errors.Is(err, ErrPersistence) cubra toda la familia.
var (
	ErrValidation  = errors.New("entrada inválida")
	ErrPersistence = errors.New("fallo de persistencia")
	ErrComputation = errors.New("valor no numérico")

	ErrNotFound = fmt.Errorf("%w: recurso no encontrado", ErrPersistence)
	ErrConflict = fmt.Errorf("%w: conflicto con el estado actual", ErrPersistence)
)

// Validationf construye un ErrValidation con el mensaje visible para el caller.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
