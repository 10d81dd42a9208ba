package billing

import (
	"context"

	"github.com/jhoicas/invoiciz-api/internal/application/dto"
	"github.com/jhoicas/invoiciz-api/internal/domain/repository"
)

// CommitTxRunner ejecuta una función dentro de una transacción que incluye
// los repos del commit de factura (cliente, cabecera y líneas). Si la función
// retorna error, el runner hace rollback y ninguna fila queda visible.
type CommitTxRunner interface {
	RunCommit(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator puerto del colaborador de exportación de documentos.
// Consume el registro estructurado de una factura finalizada y produce el
// documento legible.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, record *dto.InvoiceRecord) ([]byte, error)
}
