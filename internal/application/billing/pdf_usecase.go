package billing

import (
	"context"
	"fmt"
)

// PDFUseCase genera el documento legible (PDF) de una factura finalizada.
type PDFUseCase struct {
	query     *InvoiceQueryUseCase
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(query *InvoiceQueryUseCase, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{query: query, generator: generator}
}

// DownloadInvoicePDF arma el registro exportable de la factura y lo pasa al
// generador. Retorna los bytes del PDF y un nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	record, err := uc.query.Get(invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, record)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("invoice_%s.pdf", record.InvoiceID)
	return pdfBytes, filename, nil
}
