package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoiciz-api/internal/application/dto"
	"github.com/jhoicas/invoiciz-api/internal/application/usecase"
	"github.com/jhoicas/invoiciz-api/internal/domain"
	"github.com/jhoicas/invoiciz-api/internal/domain/entity"
	"github.com/jhoicas/invoiciz-api/internal/domain/repository"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func TestProduct_CicloCRUD(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	created, err := uc.Create(dto.ProductRequest{
		Name:  "Tornillo M4",
		Price: decimal.RequireFromString("0.15"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Empty(t, created.Description, "descripción opcional")

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tornillo M4", got.Name)

	updated, err := uc.Update(created.ID, dto.ProductRequest{
		Name:        "Tornillo M4 inox",
		Description: "acero inoxidable",
		Price:       decimal.RequireFromString("0.20"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Tornillo M4 inox", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("0.20")))

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(dto.ProductRequest{Price: decimal.NewFromInt(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "product name is required")

	_, err = uc.Create(dto.ProductRequest{
		Name:  "Arandela",
		Price: decimal.RequireFromString("-0.01"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "price must be non-negative")
}

// Precio cero permitido: muestras y artículos de cortesía.
func TestProduct_PrecioCeroPermitido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	created, err := uc.Create(dto.ProductRequest{Name: "Muestra gratis", Price: decimal.Zero})
	require.NoError(t, err)
	assert.True(t, created.Price.IsZero())
}

func TestProduct_ActualizarInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Update("no-such-id", dto.ProductRequest{
		Name:  "Fantasma",
		Price: decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrPersistence, "no encontrado pertenece a la familia de persistencia")
}
