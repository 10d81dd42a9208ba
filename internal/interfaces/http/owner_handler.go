package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoiciz-api/internal/application/dto"
	"github.com/jhoicas/invoiciz-api/internal/application/usecase"
)

// OwnerHandler maneja las peticiones HTTP para el negocio emisor.
type OwnerHandler struct {
	uc *usecase.OwnerUseCase
}

// NewOwnerHandler construye el handler.
func NewOwnerHandler(uc *usecase.OwnerUseCase) *OwnerHandler {
	return &OwnerHandler{uc: uc}
}

// Create registra un emisor nuevo.
func (h *OwnerHandler) Create(c *fiber.Ctx) error {
	var in dto.OwnerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista todos los emisores.
func (h *OwnerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un emisor por ID.
func (h *OwnerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza los campos de un emisor.
func (h *OwnerHandler) Update(c *fiber.Ctx) error {
	var in dto.OwnerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un emisor.
func (h *OwnerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
