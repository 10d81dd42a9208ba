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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y asigna el ID generado.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO customers (id, name, address, phone) VALUES ($1, $2, $3, $4)`,
		customer.ID, customer.Name, customer.Address, customer.Phone,
	)
	if err != nil {
		return fmt.Errorf("%w: insert customer: %v", domain.ErrPersistence, err)
	}
	return nil
}

// List devuelve todos los clientes en orden de almacenamiento.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, address, phone FROM customers`)
	if err != nil {
		return nil, fmt.Errorf("%w: list customers: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone); err != nil {
			return nil, fmt.Errorf("%w: scan customer: %v", domain.ErrPersistence, err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID. Devuelve nil sin error si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, address, phone FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Address, &c.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get customer: %v", domain.ErrPersistence, err)
	}
	return &c, nil
}

// Update actualiza un cliente. ErrNotFound si el id no existe.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE customers SET name = $2, address = $3, phone = $4 WHERE id = $1`,
		customer.ID, customer.Name, customer.Address, customer.Phone,
	)
	if err != nil {
		return fmt.Errorf("%w: update customer: %v", domain.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID. ErrConflict si alguna factura lo referencia.
func (r *CustomerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("%w: delete customer: %v", domain.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
