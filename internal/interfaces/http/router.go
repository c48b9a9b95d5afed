package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcaicedo/facturas-api/internal/application/billing"
	"github.com/jcaicedo/facturas-api/internal/application/catalog"
	"github.com/jcaicedo/facturas-api/internal/application/settings"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC  *billing.InvoiceUseCase
	CatalogUC  *catalog.UseCase
	SettingsUC *settings.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestID())

	// Catálogo (solo lectura)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/customers", catalogHandler.ListCustomers)

	// Configuración
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/config", settingsHandler.GetAll)
	api.Post("/config", settingsHandler.Upsert)

	// Facturas
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
}
