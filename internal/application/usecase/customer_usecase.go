package usecase

import (
	"github.com/jhoicas/invoiciz-api/internal/application/dto"
	"github.com/jhoicas/invoiciz-api/internal/domain"
	"github.com/jhoicas/invoiciz-api/internal/domain/entity"
	"github.com/jhoicas/invoiciz-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. El alta directa convive
// con los clientes insertados por el commit de facturas.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente nuevo. Los tres campos son obligatorios.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update reemplaza los campos de un cliente existente.
func (uc *CustomerUseCase) Update(id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		ID:      id,
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente. Falla con conflicto si alguna factura lo referencia.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func validateCustomer(in dto.CustomerRequest) error {
	if in.Name == "" {
		return domain.Validationf("customer name is required")
	}
	if in.Address == "" {
		return domain.Validationf("customer address is required")
	}
	if in.Phone == "" {
		return domain.Validationf("customer phone is required")
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}
}
