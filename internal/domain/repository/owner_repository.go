package repository

import "github.com/jhoicas/invoiciz-api/internal/domain/entity"

// OwnerRepository define el puerto de persistencia para Owner.
// Create asigna el ID generado sobre la entidad. Update y Delete devuelven
// domain.ErrNotFound cuando el id no existe.
type OwnerRepository interface {
	Create(owner *entity.Owner) error
	List() ([]*entity.Owner, error)
	GetByID(id string) (*entity.Owner, error)
	Update(owner *entity.Owner) error
	Delete(id string) error
}
