package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de factura. Valores almacenados en invoices.type; las etiquetas
// localizadas del documento impreso viven en la capa de presentación.
const (
	InvoiceTypePurchaseOrder   = "purchase order"
	InvoiceTypePurchaseReceipt = "purchase receipt"
	InvoiceTypeSalesReceipt    = "sales receipt"
	InvoiceTypeDeliveryNote    = "delivery note"
)

// ValidInvoiceType verifica que t pertenece a la enumeración fija.
func ValidInvoiceType(t string) bool {
	switch t {
	case InvoiceTypePurchaseOrder, InvoiceTypePurchaseReceipt,
		InvoiceTypeSalesReceipt, InvoiceTypeDeliveryNote:
		return true
	}
	return false
}

// Invoice representa la cabecera de una factura.
// Total es el gran total calculado (neto menos descuento) al momento del commit.
type Invoice struct {
	ID         string
	OwnerID    *string // opcional
	CustomerID string
	Date       time.Time
	Total      decimal.Decimal
	Type       string
}

// InvoiceItem representa una línea persistida de una factura.
// ProductID es opcional: las líneas pueden ser ad hoc, sin entrada de catálogo.
type InvoiceItem struct {
	ID        string
	InvoiceID string
	ProductID *string
	Quantity  int64
	Price     decimal.Decimal
}

// Total devuelve quantity × price. Se calcula, no se almacena.
func (it InvoiceItem) Total() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(it.Quantity))
}
