package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoiciz-api/internal/application/dto"
	"github.com/jhoicas/invoiciz-api/internal/domain"
	"github.com/jhoicas/invoiciz-api/internal/domain/repository"
)

var oneHundred = decimal.NewFromInt(100)

// InvoiceQueryUseCase lecturas de facturas finalizadas: listado, registro
// exportable y borrado.
type InvoiceQueryUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewInvoiceQueryUseCase construye el caso de uso.
func NewInvoiceQueryUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *InvoiceQueryUseCase {
	return &InvoiceQueryUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// List devuelve las cabeceras de todas las facturas.
func (uc *InvoiceQueryUseCase) List() ([]*dto.InvoiceSummary, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, &dto.InvoiceSummary{
			ID:         inv.ID,
			OwnerID:    inv.OwnerID,
			CustomerID: inv.CustomerID,
			Date:       inv.Date.Format("2006-01-02"),
			Total:      inv.Total,
			Type:       inv.Type,
		})
	}
	return out, nil
}

// Get reconstruye el registro exportable de una factura persistida: cabecera,
// cliente y líneas (con nombre de producto cuando la línea referencia el
// catálogo). El neto se rederiva de las líneas y el descuento se despeja del
// total almacenado frente al neto.
func (uc *InvoiceQueryUseCase) Get(id string) (*dto.InvoiceRecord, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s of invoice %s", domain.ErrNotFound, inv.CustomerID, id)
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}

	records := make([]dto.InvoiceItemRecord, 0, len(items))
	net := decimal.Zero
	for _, it := range items {
		name := ""
		if it.ProductID != nil {
			product, pErr := uc.productRepo.GetByID(*it.ProductID)
			if pErr != nil {
				return nil, fmt.Errorf("resolver producto %s de la factura %s: %w", *it.ProductID, id, pErr)
			}
			if product != nil {
				name = product.Name
			}
		}
		total := it.Total()
		net = net.Add(total)
		records = append(records, dto.InvoiceItemRecord{
			Name:     name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Total:    total,
		})
	}
	net = net.Round(2)

	// El porcentaje de descuento no se persiste; se despeja de neto y total.
	discount := decimal.Zero
	if net.IsPositive() {
		discount = net.Sub(inv.Total).Div(net).Mul(oneHundred).Round(2)
	}

	return &dto.InvoiceRecord{
		Type:      inv.Type,
		InvoiceID: inv.ID,
		Date:      inv.Date.Format("2006-01-02"),
		Customer: dto.CustomerFields{
			Name:    customer.Name,
			Address: customer.Address,
			Phone:   customer.Phone,
		},
		Items:    records,
		NetTotal: net,
		Discount: discount,
		Total:    inv.Total,
	}, nil
}

// Delete elimina una factura; sus líneas caen en cascada.
func (uc *InvoiceQueryUseCase) Delete(id string) error {
	return uc.invoiceRepo.Delete(id)
}
