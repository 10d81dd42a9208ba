package repository

import "github.com/jhoicas/invoiciz-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	List() ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// Delete es físico; si el producto está referenciado por una línea de
	// factura devuelve domain.ErrConflict.
	Delete(id string) error
}
