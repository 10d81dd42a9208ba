package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoiciz-api/internal/domain"
	"github.com/jhoicas/invoiciz-api/internal/domain/entity"
	"github.com/jhoicas/invoiciz-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura y asigna el ID generado.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO invoices (id, owner_id, customer_id, date, total, type)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		invoice.ID, invoice.OwnerID, invoice.CustomerID,
		invoice.Date, invoice.Total, invoice.Type,
	)
	if err != nil {
		return fmt.Errorf("%w: insert invoice: %v", domain.ErrPersistence, err)
	}
	return nil
}

// CreateItem persiste una línea. La cabecera debe existir (invoice_id FK).
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO invoice_items (id, invoice_id, product_id, quantity, price)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.InvoiceID, item.ProductID, item.Quantity, item.Price,
	)
	if err != nil {
		return fmt.Errorf("%w: insert invoice item: %v", domain.ErrPersistence, err)
	}
	return nil
}

// List devuelve todas las cabeceras en orden de almacenamiento.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, owner_id, customer_id, date, total, type FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("%w: list invoices: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.OwnerID, &inv.CustomerID,
			&inv.Date, &inv.Total, &inv.Type); err != nil {
			return nil, fmt.Errorf("%w: scan invoice: %v", domain.ErrPersistence, err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetByID obtiene una cabecera por ID. Devuelve nil sin error si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(),
		`SELECT id, owner_id, customer_id, date, total, type FROM invoices WHERE id = $1`, id).
		Scan(&inv.ID, &inv.OwnerID, &inv.CustomerID, &inv.Date, &inv.Total, &inv.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get invoice: %v", domain.ErrPersistence, err)
	}
	return &inv, nil
}

// GetItemsByInvoiceID obtiene todas las líneas de una factura.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, invoice_id, product_id, quantity, price
		 FROM invoice_items WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: list invoice items: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("%w: scan invoice item: %v", domain.ErrPersistence, err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera. ErrNotFound si el id no existe.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET owner_id = $2, customer_id = $3, date = $4, total = $5, type = $6
		 WHERE id = $1`,
		invoice.ID, invoice.OwnerID, invoice.CustomerID,
		invoice.Date, invoice.Total, invoice.Type,
	)
	if err != nil {
		return fmt.Errorf("%w: update invoice: %v", domain.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la cabecera; las líneas caen por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete invoice: %v", domain.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
