package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appbilling "github.com/jcaicedo/facturas-api/internal/application/billing"
	"github.com/jcaicedo/facturas-api/internal/application/catalog"
	"github.com/jcaicedo/facturas-api/internal/application/settings"
	"github.com/jcaicedo/facturas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcaicedo/facturas-api/internal/interfaces/http"
	"github.com/jcaicedo/facturas-api/pkg/config"
	"github.com/jcaicedo/facturas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	invoiceUC := appbilling.NewInvoiceUseCase(txRunner, invoiceRepo, settingRepo, appbilling.Params{
		NumberPrefix:   cfg.Billing.NumberPrefix,
		NumberPadding:  cfg.Billing.NumberPadding,
		DefaultTaxRate: cfg.Billing.DefaultTaxRate,
	})
	catalogUC := catalog.NewUseCase(customerRepo, productRepo)
	settingsUC := settings.NewUseCase(settingRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:  invoiceUC,
		CatalogUC:  catalogUC,
		SettingsUC: settingsUC,
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
