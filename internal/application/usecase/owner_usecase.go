package usecase

import (
	"github.com/jhoicas/invoiciz-api/internal/application/dto"
	"github.com/jhoicas/invoiciz-api/internal/domain"
	"github.com/jhoicas/invoiciz-api/internal/domain/entity"
	"github.com/jhoicas/invoiciz-api/internal/domain/repository"
)

// OwnerUseCase casos de uso CRUD para el negocio emisor.
type OwnerUseCase struct {
	repo repository.OwnerRepository
}

// NewOwnerUseCase construye el caso de uso.
func NewOwnerUseCase(repo repository.OwnerRepository) *OwnerUseCase {
	return &OwnerUseCase{repo: repo}
}

// Create registra un emisor nuevo. Los tres campos son obligatorios.
func (uc *OwnerUseCase) Create(in dto.OwnerRequest) (*dto.OwnerResponse, error) {
	if err := validateOwner(in); err != nil {
		return nil, err
	}
	owner := &entity.Owner{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	}
	if err := uc.repo.Create(owner); err != nil {
		return nil, err
	}
	return toOwnerResponse(owner), nil
}

// GetByID obtiene un emisor por ID.
func (uc *OwnerUseCase) GetByID(id string) (*dto.OwnerResponse, error) {
	owner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	return toOwnerResponse(owner), nil
}

// List lista todos los emisores registrados.
func (uc *OwnerUseCase) List() ([]*dto.OwnerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OwnerResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOwnerResponse(o))
	}
	return out, nil
}

// Update reemplaza los campos de un emisor existente.
func (uc *OwnerUseCase) Update(id string, in dto.OwnerRequest) (*dto.OwnerResponse, error) {
	if err := validateOwner(in); err != nil {
		return nil, err
	}
	owner := &entity.Owner{
		ID:      id,
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	}
	if err := uc.repo.Update(owner); err != nil {
		return nil, err
	}
	return toOwnerResponse(owner), nil
}

// Delete elimina un emisor. Falla con conflicto si alguna factura lo referencia.
func (uc *OwnerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func validateOwner(in dto.OwnerRequest) error {
	if in.Name == "" {
		return domain.Validationf("owner name is required")
	}
	if in.Address == "" {
		return domain.Validationf("owner address is required")
	}
	if in.Phone == "" {
		return domain.Validationf("owner phone is required")
	}
	return nil
}

func toOwnerResponse(o *entity.Owner) *dto.OwnerResponse {
	if o == nil {
		return nil
	}
	return &dto.OwnerResponse{
		ID:      o.ID,
		Name:    o.Name,
		Address: o.Address,
		Phone:   o.Phone,
	}
}
