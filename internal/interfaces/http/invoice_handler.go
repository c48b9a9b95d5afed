package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jcaicedo/facturas-api/internal/application/billing"
	"github.com/jcaicedo/facturas-api/internal/application/dto"
	"github.com/jcaicedo/facturas-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturación.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create crea una factura con sus líneas en una sola transacción.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.CreateInvoice(c.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			fields := make([]dto.FieldErrorResponse, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, dto.FieldErrorResponse{Field: f.Field, Message: f.Message})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "datos inválidos", Fields: fields,
			})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente o producto no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "colisión del consecutivo, reintente la operación"})
		}
		log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("route", c.Route().Path).
			Msg("crear factura")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de persistencia"})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetByID obtiene la factura completa con cliente y líneas.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id numérico requerido"})
	}
	invoice, err := h.uc.GetInvoice(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("route", c.Route().Path).
			Msg("consultar factura")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de persistencia"})
	}
	return c.JSON(invoice)
}
