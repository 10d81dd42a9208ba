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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste una nueva entrada de catálogo y asigna el ID generado.
// Description vacía se almacena como NULL.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO products (id, name, description, price) VALUES ($1, $2, $3, $4)`,
		product.ID, product.Name, nullIfEmpty(product.Description), product.Price,
	)
	if err != nil {
		return fmt.Errorf("%w: insert product: %v", domain.ErrPersistence, err)
	}
	return nil
}

// List devuelve todo el catálogo en orden de almacenamiento.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, COALESCE(description, ''), price FROM products`)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			return nil, fmt.Errorf("%w: scan product: %v", domain.ErrPersistence, err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, COALESCE(description, ''), price FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get product: %v", domain.ErrPersistence, err)
	}
	return &p, nil
}

// Update actualiza un producto. ErrNotFound si el id no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET name = $2, description = $3, price = $4 WHERE id = $1`,
		product.ID, product.Name, nullIfEmpty(product.Description), product.Price,
	)
	if err != nil {
		return fmt.Errorf("%w: update product: %v", domain.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. ErrConflict si alguna línea de factura
// lo referencia.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("%w: delete product: %v", domain.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
