package dto

import "github.com/shopspring/decimal"

// CustomerFields datos del cliente capturados en el formulario de factura.
type CustomerFields struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// DraftItemRequest línea del borrador (nombre libre, cantidad, precio unitario).
type DraftItemRequest struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CommitInvoiceRequest body para POST /api/invoices: el commit de un borrador.
type CommitInvoiceRequest struct {
	Customer CustomerFields     `json:"customer"`
	OwnerID  *string            `json:"owner_id,omitempty"`
	Type     string             `json:"type,omitempty"` // por defecto "purchase order"
	Discount decimal.Decimal    `json:"discount"`       // porcentaje [0, 100]
	Items    []DraftItemRequest `json:"items"`
}

// InvoiceItemRecord línea dentro del registro exportable.
type InvoiceItemRecord struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

// InvoiceRecord es el registro estructurado de una factura finalizada, la
// frontera exacta que consume el exportador de documentos (PDF).
type InvoiceRecord struct {
	Type      string              `json:"type"`
	InvoiceID string              `json:"invoice_id"`
	Date      string              `json:"date"`
	Customer  CustomerFields      `json:"customer"`
	Items     []InvoiceItemRecord `json:"items"`
	NetTotal  decimal.Decimal     `json:"net_total"`
	Discount  decimal.Decimal     `json:"discount"`
	Total     decimal.Decimal     `json:"total"`
}

// InvoiceSummary cabecera para GET /api/invoices.
type InvoiceSummary struct {
	ID         string          `json:"id"`
	OwnerID    *string         `json:"owner_id,omitempty"`
	CustomerID string          `json:"customer_id"`
	Date       string          `json:"date"`
	Total      decimal.Decimal `json:"total"`
	Type       string          `json:"type"`
}
