package http

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoiciz-api/internal/domain"
)

// parseDecimal convierte un campo de texto del cliente en decimal. Los montos
// llegan como texto libre (campos de formulario); un valor no numérico es un
// error de cómputo, no de validación.
func parseDecimal(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %q", domain.ErrComputation, field, s)
	}
	return d, nil
}
