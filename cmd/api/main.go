package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appbilling "github.com/jhoicas/invoiciz-api/internal/application/billing"
	"github.com/jhoicas/invoiciz-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/invoiciz-api/internal/infrastructure/pdf"
	"github.com/jhoicas/invoiciz-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/invoiciz-api/internal/interfaces/http"
	"github.com/jhoicas/invoiciz-api/pkg/config"
	"github.com/jhoicas/invoiciz-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	ownerRepo := postgres.NewOwnerRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	commitInvoiceUC := appbilling.NewCommitInvoiceUseCase(txRunner)
	invoiceQueryUC := appbilling.NewInvoiceQueryUseCase(invoiceRepo, customerRepo, productRepo)
	invoicePDFUC := appbilling.NewPDFUseCase(invoiceQueryUC, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OwnerUC:       usecase.NewOwnerUseCase(ownerRepo),
		CustomerUC:    usecase.NewCustomerUseCase(customerRepo),
		ProductUC:     usecase.NewProductUseCase(productRepo),
		CommitInvoice: commitInvoiceUC,
		InvoiceQuery:  invoiceQueryUC,
		InvoicePDF:    invoicePDFUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
