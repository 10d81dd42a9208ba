package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoiciz-api/internal/application/dto"
	"github.com/jhoicas/invoiciz-api/internal/domain"
	domainbilling "github.com/jhoicas/invoiciz-api/internal/domain/billing"
	"github.com/jhoicas/invoiciz-api/internal/domain/entity"
	"github.com/jhoicas/invoiciz-api/internal/domain/repository"
)

// CommitInvoiceUseCase persiste un borrador de factura como una sola unidad
// lógica: cliente + cabecera + líneas en una transacción. O se confirma todo
// o no queda nada visible.
type CommitInvoiceUseCase struct {
	txRunner CommitTxRunner
}

// NewCommitInvoiceUseCase construye el caso de uso.
func NewCommitInvoiceUseCase(txRunner CommitTxRunner) *CommitInvoiceUseCase {
	return &CommitInvoiceUseCase{txRunner: txRunner}
}

// Commit valida la entrada, calcula los totales y persiste la factura.
// Las validaciones cortan en el primer fallo, antes de cualquier efecto:
//
//	cliente sin nombre/dirección/teléfono, borrador vacío, línea inválida,
//	tipo fuera de la enumeración o descuento fuera de [0, 100].
//
// El total se rederiva dentro de la transacción; nunca se confía en un total
// calculado por el caller. Devuelve el registro exportable con el ID generado.
func (uc *CommitInvoiceUseCase) Commit(ctx context.Context, in dto.CommitInvoiceRequest) (*dto.InvoiceRecord, error) {
	if in.Customer.Name == "" {
		return nil, domain.Validationf("company name required")
	}
	if in.Customer.Address == "" {
		return nil, domain.Validationf("company address required")
	}
	if in.Customer.Phone == "" {
		return nil, domain.Validationf("company phone required")
	}
	if len(in.Items) == 0 {
		return nil, domain.Validationf("add at least one product")
	}

	draft := domainbilling.NewDraft()
	for _, it := range in.Items {
		if err := draft.AddItem(it.Name, it.Quantity, it.Price); err != nil {
			return nil, err
		}
	}

	invType := in.Type
	if invType == "" {
		invType = entity.InvoiceTypePurchaseOrder
	}
	if !entity.ValidInvoiceType(invType) {
		return nil, domain.Validationf("invalid invoice type %q", invType)
	}

	// El descuento se valida antes de tocar el almacén; un 150% jamás llega
	// a abrir la transacción.
	if _, err := domainbilling.Calculate(draft.Items(), in.Discount); err != nil {
		return nil, err
	}

	now := time.Now()
	var inv *entity.Invoice
	var totals domainbilling.Totals

	err := uc.txRunner.RunCommit(ctx, func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		// Comportamiento observado del sistema original: cada commit inserta
		// un cliente nuevo, sin deduplicación.
		customer := &entity.Customer{
			Name:    in.Customer.Name,
			Address: in.Customer.Address,
			Phone:   in.Customer.Phone,
		}
		if err := customerRepo.Create(customer); err != nil {
			return err
		}

		var err error
		totals, err = domainbilling.Calculate(draft.Items(), in.Discount)
		if err != nil {
			return err
		}

		inv = &entity.Invoice{
			OwnerID:    in.OwnerID,
			CustomerID: customer.ID,
			Date:       now,
			Total:      totals.GrandTotal,
			Type:       invType,
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}

		for _, line := range draft.Items() {
			item := &entity.InvoiceItem{
				InvoiceID: inv.ID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			}
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrPersistence) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: commit invoice: %v", domain.ErrPersistence, err)
	}

	return buildRecord(inv.ID, invType, now, in.Customer, draft.Items(), totals, in.Discount), nil
}

// buildRecord arma el registro exportable a partir del borrador y los totales.
func buildRecord(
	invoiceID, invType string,
	date time.Time,
	customer dto.CustomerFields,
	lines []domainbilling.LineItem,
	totals domainbilling.Totals,
	discount decimal.Decimal,
) *dto.InvoiceRecord {
	items := make([]dto.InvoiceItemRecord, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.InvoiceItemRecord{
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
			Total:    l.Total,
		})
	}
	return &dto.InvoiceRecord{
		Type:      invType,
		InvoiceID: invoiceID,
		Date:      date.Format("2006-01-02"),
		Customer:  customer,
		Items:     items,
		NetTotal:  totals.NetTotal,
		Discount:  discount,
		Total:     totals.GrandTotal,
	}
}
