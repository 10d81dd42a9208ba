package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isForeignKeyViolation verifica si un error es una violación de clave
// foránea (23503). Ocurre al borrar una fila aún referenciada
// (ON DELETE RESTRICT) o al insertar con una referencia inexistente.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
