package billing_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	appbilling "github.com/jhoicas/invoiciz-api/internal/application/billing"
	"github.com/jhoicas/invoiciz-api/internal/domain"
	"github.com/jhoicas/invoiciz-api/internal/domain/entity"
	"github.com/jhoicas/invoiciz-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner modela la atomicidad real: escribe sobre
// una copia y solo la publica si el callback termina sin error.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	customers []*entity.Customer
	invoices  []*entity.Invoice
	items     []*entity.InvoiceItem
	products  []*entity.Product
}

func (s *fakeStore) clone() *fakeStore {
	c := &fakeStore{}
	c.customers = append(c.customers, s.customers...)
	c.invoices = append(c.invoices, s.invoices...)
	c.items = append(c.items, s.items...)
	c.products = append(c.products, s.products...)
	return c
}

type fakeCustomerRepo struct {
	store *fakeStore
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	cp := *c
	r.store.customers = append(r.store.customers, &cp)
	return nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) { return r.store.customers, nil }

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.store.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error { return domain.ErrNotFound }
func (r *fakeCustomerRepo) Delete(id string) error          { return domain.ErrNotFound }

// fakeInvoiceRepo permite inyectar un fallo después de N líneas insertadas,
// para probar que el commit no deja estado parcial.
type fakeInvoiceRepo struct {
	store         *fakeStore
	failAfterItem int // -1 = nunca falla
	inserted      int
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	cp := *inv
	r.store.invoices = append(r.store.invoices, &cp)
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(it *entity.InvoiceItem) error {
	if r.failAfterItem >= 0 && r.inserted >= r.failAfterItem {
		return fmt.Errorf("%w: insert invoice item: simulated failure", domain.ErrPersistence)
	}
	r.inserted++
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	cp := *it
	r.store.items = append(r.store.items, &cp)
	return nil
}

func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) { return r.store.invoices, nil }

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.store.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, it := range r.store.items {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error { return domain.ErrNotFound }

func (r *fakeInvoiceRepo) Delete(id string) error {
	for i, inv := range r.store.invoices {
		if inv.ID == id {
			r.store.invoices = append(r.store.invoices[:i], r.store.invoices[i+1:]...)
			var kept []*entity.InvoiceItem
			for _, it := range r.store.items {
				if it.InvoiceID != id {
					kept = append(kept, it)
				}
			}
			r.store.items = kept
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeProductRepo permite inyectar un fallo en las lecturas por ID.
type fakeProductRepo struct {
	store  *fakeStore
	getErr error
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := *p
	r.store.products = append(r.store.products, &cp)
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) { return r.store.products, nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, p := range r.store.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return domain.ErrNotFound }
func (r *fakeProductRepo) Delete(id string) error         { return domain.ErrNotFound }

// fakeTxRunner publica la copia solo si fn no retorna error.
type fakeTxRunner struct {
	store         *fakeStore
	failAfterItem int // se propaga al fakeInvoiceRepo de cada "transacción"
	beginErr      error
	runs          int
}

var _ appbilling.CommitTxRunner = (*fakeTxRunner)(nil)

func newFakeTxRunner(store *fakeStore) *fakeTxRunner {
	return &fakeTxRunner{store: store, failAfterItem: -1}
}

func (r *fakeTxRunner) RunCommit(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	r.runs++
	if r.beginErr != nil {
		return r.beginErr
	}
	staged := r.store.clone()
	customerRepo := &fakeCustomerRepo{store: staged}
	invoiceRepo := &fakeInvoiceRepo{store: staged, failAfterItem: r.failAfterItem}
	if err := fn(customerRepo, invoiceRepo); err != nil {
		return err // rollback: staged se descarta
	}
	*r.store = *staged
	return nil
}

var errBoom = errors.New("boom")
