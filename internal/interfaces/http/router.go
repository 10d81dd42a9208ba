package http

import (
	"github.com/gofiber/fiber/v2"

	appbilling "github.com/jhoicas/invoiciz-api/internal/application/billing"
	"github.com/jhoicas/invoiciz-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OwnerUC       *usecase.OwnerUseCase
	CustomerUC    *usecase.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
	CommitInvoice *appbilling.CommitInvoiceUseCase
	InvoiceQuery  *appbilling.InvoiceQueryUseCase
	InvoicePDF    *appbilling.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Owners (negocio emisor)
	owners := api.Group("/owners")
	ownerHandler := NewOwnerHandler(deps.OwnerUC)
	owners.Post("/", ownerHandler.Create)
	owners.Get("/", ownerHandler.List)
	owners.Get("/:id", ownerHandler.GetByID)
	owners.Put("/:id", ownerHandler.Update)
	owners.Delete("/:id", ownerHandler.Delete)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Products (catálogo)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Invoices (commit del borrador + lecturas + PDF)
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CommitInvoice, deps.InvoiceQuery, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Commit)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
}
