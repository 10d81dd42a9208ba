package repository

import "github.com/jhoicas/invoiciz-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas y sus líneas.
// Las líneas solo se crean como parte de un commit de factura, nunca antes de
// que exista la cabecera (requieren invoice_id).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	List() ([]*entity.Invoice, error)
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	Update(invoice *entity.Invoice) error
	// Delete elimina la cabecera; las líneas caen en cascada.
	Delete(id string) error
}
