package repository

import "github.com/jhoicas/invoiciz-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	List() ([]*entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Delete es físico; si el cliente está referenciado por una factura
	// devuelve domain.ErrConflict.
	Delete(id string) error
}
