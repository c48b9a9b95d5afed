package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jcaicedo/facturas-api/internal/application/catalog"
	"github.com/jcaicedo/facturas-api/internal/application/dto"
)

// CatalogHandler maneja los listados de solo lectura del catálogo.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts GET /api/products
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	list, err := h.uc.ListActiveProducts()
	if err != nil {
		log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("listar productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de persistencia"})
	}
	return c.JSON(list)
}

// ListCustomers GET /api/customers
func (h *CatalogHandler) ListCustomers(c *fiber.Ctx) error {
	list, err := h.uc.ListCustomers()
	if err != nil {
		log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("listar clientes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de persistencia"})
	}
	return c.JSON(list)
}
