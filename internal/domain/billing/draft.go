package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoiciz-api/internal/domain"
)

// LineItem es una línea de la factura en composición. Total = Quantity × Price,
// calculado al agregar la línea.
type LineItem struct {
	Name     string
	Quantity int64
	Price    decimal.Decimal
	Total    decimal.Decimal
}

// Draft acumula en memoria las líneas de una factura en composición.
// No toca la persistencia: el commit es responsabilidad del caso de uso.
type Draft struct {
	items []LineItem
}

// NewDraft construye un borrador vacío.
func NewDraft() *Draft {
	return &Draft{}
}

// AddItem valida y agrega una línea al final del borrador.
func (d *Draft) AddItem(name string, quantity int64, price decimal.Decimal) error {
	if name == "" {
		return domain.Validationf("product name is required")
	}
	if quantity < 1 {
		return domain.Validationf("quantity must be a positive integer")
	}
	if price.IsNegative() {
		return domain.Validationf("price must be non-negative")
	}
	d.items = append(d.items, LineItem{
		Name:     name,
		Quantity: quantity,
		Price:    price,
		Total:    price.Mul(decimal.NewFromInt(quantity)),
	})
	return nil
}

// RemoveAll vacía el borrador (cancelación o después de un commit exitoso).
func (d *Draft) RemoveAll() {
	d.items = nil
}

// Items devuelve una copia de las líneas, en orden de inserción.
func (d *Draft) Items() []LineItem {
	out := make([]LineItem, len(d.items))
	copy(out, d.items)
	return out
}

// Len devuelve el número de líneas.
func (d *Draft) Len() int {
	return len(d.items)
}
