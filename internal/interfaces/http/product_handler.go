package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoiciz-api/internal/application/dto"
	"github.com/jhoicas/invoiciz-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para el catálogo.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// productBody body de entrada. El precio llega como texto libre y se parsea
// en la frontera.
type productBody struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

func (b productBody) toRequest() (dto.ProductRequest, error) {
	price, err := parseDecimal("price", b.Price)
	if err != nil {
		return dto.ProductRequest{}, err
	}
	return dto.ProductRequest{
		Name:        b.Name,
		Description: b.Description,
		Price:       price,
	}, nil
}

// Create registra un producto nuevo.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var body productBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	in, err := body.toRequest()
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista el catálogo completo.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un producto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza los campos de un producto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var body productBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	in, err := body.toRequest()
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto. Las líneas de factura que lo referencian lo bloquean (409).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
