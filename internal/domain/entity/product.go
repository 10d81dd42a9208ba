package entity

import "github.com/shopspring/decimal"

// Product representa una entrada del catálogo, independiente de cualquier factura.
type Product struct {
	ID          string
	Name        string
	Description string // opcional
	Price       decimal.Decimal
}
