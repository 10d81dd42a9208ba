package http_test

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	appbilling "github.com/jhoicas/invoiciz-api/internal/application/billing"
	"github.com/jhoicas/invoiciz-api/internal/application/dto"
	"github.com/jhoicas/invoiciz-api/internal/application/usecase"
	"github.com/jhoicas/invoiciz-api/internal/domain"
	"github.com/jhoicas/invoiciz-api/internal/domain/entity"
	"github.com/jhoicas/invoiciz-api/internal/domain/repository"
	httpiface "github.com/jhoicas/invoiciz-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por todos los repos fake. Los Delete respetan
// las referencias igual que las FKs del esquema real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	owners    map[string]*entity.Owner
	customers map[string]*entity.Customer
	products  map[string]*entity.Product
	invoices  map[string]*entity.Invoice
	items     map[string]*entity.InvoiceItem
}

func newMemStore() *memStore {
	return &memStore{
		owners:    map[string]*entity.Owner{},
		customers: map[string]*entity.Customer{},
		products:  map[string]*entity.Product{},
		invoices:  map[string]*entity.Invoice{},
		items:     map[string]*entity.InvoiceItem{},
	}
}

func (s *memStore) customerReferenced(id string) bool {
	for _, inv := range s.invoices {
		if inv.CustomerID == id {
			return true
		}
	}
	return false
}

func (s *memStore) productReferenced(id string) bool {
	for _, it := range s.items {
		if it.ProductID != nil && *it.ProductID == id {
			return true
		}
	}
	return false
}

type memOwnerRepo struct{ store *memStore }

var _ repository.OwnerRepository = (*memOwnerRepo)(nil)

func (r *memOwnerRepo) Create(o *entity.Owner) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	cp := *o
	r.store.owners[o.ID] = &cp
	return nil
}

func (r *memOwnerRepo) List() ([]*entity.Owner, error) {
	out := make([]*entity.Owner, 0, len(r.store.owners))
	for _, o := range r.store.owners {
		out = append(out, o)
	}
	return out, nil
}

func (r *memOwnerRepo) GetByID(id string) (*entity.Owner, error) { return r.store.owners[id], nil }

func (r *memOwnerRepo) Update(o *entity.Owner) error {
	if _, ok := r.store.owners[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	r.store.owners[o.ID] = &cp
	return nil
}

func (r *memOwnerRepo) Delete(id string) error {
	if _, ok := r.store.owners[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.owners, id)
	return nil
}

type memCustomerRepo struct{ store *memStore }

var _ repository.CustomerRepository = (*memCustomerRepo)(nil)

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	cp := *c
	r.store.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.store.customers[id], nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.store.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.store.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	if _, ok := r.store.customers[id]; !ok {
		return domain.ErrNotFound
	}
	if r.store.customerReferenced(id) {
		return domain.ErrConflict
	}
	delete(r.store.customers, id)
	return nil
}

type memProductRepo struct{ store *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.store.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.store.products[id]; !ok {
		return domain.ErrNotFound
	}
	if r.store.productReferenced(id) {
		return domain.ErrConflict
	}
	delete(r.store.products, id)
	return nil
}

type memInvoiceRepo struct{ store *memStore }

var _ repository.InvoiceRepository = (*memInvoiceRepo)(nil)

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	cp := *inv
	r.store.invoices[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) CreateItem(it *entity.InvoiceItem) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	cp := *it
	r.store.items[it.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) List() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.store.invoices))
	for _, inv := range r.store.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.store.invoices[id], nil
}

func (r *memInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, it := range r.store.items {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memInvoiceRepo) Update(inv *entity.Invoice) error {
	if _, ok := r.store.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	r.store.invoices[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) Delete(id string) error {
	if _, ok := r.store.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.invoices, id)
	for itemID, it := range r.store.items {
		if it.InvoiceID == id {
			delete(r.store.items, itemID)
		}
	}
	return nil
}

// memTxRunner ejecuta el callback directamente sobre el almacén; los tests de
// atomicidad viven en el paquete del caso de uso.
type memTxRunner struct{ store *memStore }

var _ appbilling.CommitTxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) RunCommit(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(&memCustomerRepo{store: r.store}, &memInvoiceRepo{store: r.store})
}

// stubPDFGenerator devuelve bytes fijos con firma de PDF.
type stubPDFGenerator struct{}

var _ appbilling.InvoicePDFGenerator = (*stubPDFGenerator)(nil)

func (stubPDFGenerator) GenerateInvoicePDF(_ context.Context, _ *dto.InvoiceRecord) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

// newTestApp arma la app completa sobre el almacén en memoria.
func newTestApp(store *memStore) *fiber.App {
	invoiceQuery := appbilling.NewInvoiceQueryUseCase(
		&memInvoiceRepo{store: store},
		&memCustomerRepo{store: store},
		&memProductRepo{store: store},
	)

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		OwnerUC:       usecase.NewOwnerUseCase(&memOwnerRepo{store: store}),
		CustomerUC:    usecase.NewCustomerUseCase(&memCustomerRepo{store: store}),
		ProductUC:     usecase.NewProductUseCase(&memProductRepo{store: store}),
		CommitInvoice: appbilling.NewCommitInvoiceUseCase(&memTxRunner{store: store}),
		InvoiceQuery:  invoiceQuery,
		InvoicePDF:    appbilling.NewPDFUseCase(invoiceQuery, stubPDFGenerator{}),
	})
	return app
}
