package http

import (
	"github.com/gofiber/fiber/v2"

	appbilling "github.com/jhoicas/invoiciz-api/internal/application/billing"
	"github.com/jhoicas/invoiciz-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturas: commit del borrador,
// lecturas, borrado y descarga del PDF.
type InvoiceHandler struct {
	commit *appbilling.CommitInvoiceUseCase
	query  *appbilling.InvoiceQueryUseCase
	pdf    *appbilling.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	commit *appbilling.CommitInvoiceUseCase,
	query *appbilling.InvoiceQueryUseCase,
	pdf *appbilling.PDFUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{commit: commit, query: query, pdf: pdf}
}

// commitInvoiceBody body de POST /api/invoices. Montos y descuento llegan como
// texto libre (campos de formulario) y se parsean en la frontera.
type commitInvoiceBody struct {
	Customer dto.CustomerFields `json:"customer"`
	OwnerID  *string            `json:"owner_id,omitempty"`
	Type     string             `json:"type,omitempty"`
	Discount string             `json:"discount,omitempty"`
	Items    []invoiceItemBody  `json:"items"`
}

type invoiceItemBody struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
}

func (b commitInvoiceBody) toRequest() (dto.CommitInvoiceRequest, error) {
	discount, err := parseDecimal("discount", b.Discount)
	if err != nil {
		return dto.CommitInvoiceRequest{}, err
	}
	items := make([]dto.DraftItemRequest, 0, len(b.Items))
	for _, it := range b.Items {
		price, err := parseDecimal("price", it.Price)
		if err != nil {
			return dto.CommitInvoiceRequest{}, err
		}
		items = append(items, dto.DraftItemRequest{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    price,
		})
	}
	return dto.CommitInvoiceRequest{
		Customer: b.Customer,
		OwnerID:  b.OwnerID,
		Type:     b.Type,
		Discount: discount,
		Items:    items,
	}, nil
}

// Commit finaliza un borrador: valida, calcula totales y persiste cliente,
// cabecera y líneas en una sola transacción. Devuelve el registro exportable.
func (h *InvoiceHandler) Commit(c *fiber.Ctx) error {
	var body commitInvoiceBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	req, err := body.toRequest()
	if err != nil {
		return respondError(c, err)
	}
	record, err := h.commit.Commit(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// List lista las cabeceras de todas las facturas.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve el registro exportable de una factura.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	record, err := h.query.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

// Delete elimina una factura y sus líneas.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.query.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF genera y descarga el PDF de la factura.
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
