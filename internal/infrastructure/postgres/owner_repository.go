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

var _ repository.OwnerRepository = (*OwnerRepo)(nil)

// OwnerRepo implementación de OwnerRepository (usable con pool o tx).
type OwnerRepo struct {
	q Querier
}

// NewOwnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOwnerRepository(q Querier) *OwnerRepo {
	return &OwnerRepo{q: q}
}

// Create persiste un nuevo emisor y asigna el ID generado.
func (r *OwnerRepo) Create(owner *entity.Owner) error {
	if owner.ID == "" {
		owner.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO owner (id, name, address, phone) VALUES ($1, $2, $3, $4)`,
		owner.ID, owner.Name, owner.Address, owner.Phone,
	)
	if err != nil {
		return fmt.Errorf("%w: insert owner: %v", domain.ErrPersistence, err)
	}
	return nil
}

// List devuelve todos los emisores en orden de almacenamiento.
func (r *OwnerRepo) List() ([]*entity.Owner, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, address, phone FROM owner`)
	if err != nil {
		return nil, fmt.Errorf("%w: list owners: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()
	var list []*entity.Owner
	for rows.Next() {
		var o entity.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Address, &o.Phone); err != nil {
			return nil, fmt.Errorf("%w: scan owner: %v", domain.ErrPersistence, err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// GetByID obtiene un emisor por ID. Devuelve nil sin error si no existe.
func (r *OwnerRepo) GetByID(id string) (*entity.Owner, error) {
	var o entity.Owner
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, address, phone FROM owner WHERE id = $1`, id).
		Scan(&o.ID, &o.Name, &o.Address, &o.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get owner: %v", domain.ErrPersistence, err)
	}
	return &o, nil
}

// Update actualiza un emisor. ErrNotFound si el id no existe.
func (r *OwnerRepo) Update(owner *entity.Owner) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE owner SET name = $2, address = $3, phone = $4 WHERE id = $1`,
		owner.ID, owner.Name, owner.Address, owner.Phone,
	)
	if err != nil {
		return fmt.Errorf("%w: update owner: %v", domain.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un emisor por ID. ErrConflict si alguna factura lo referencia.
func (r *OwnerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM owner WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("%w: delete owner: %v", domain.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
