package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jcaicedo/facturas-api/internal/application/dto"
	"github.com/jcaicedo/facturas-api/internal/application/settings"
)

// SettingsHandler maneja la configuración clave/valor.
type SettingsHandler struct {
	uc *settings.UseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *settings.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetAll GET /api/config
func (h *SettingsHandler) GetAll(c *fiber.Ctx) error {
	values, err := h.uc.GetAll()
	if err != nil {
		log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("leer configuración")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de persistencia"})
	}
	return c.JSON(values)
}

// Upsert POST /api/config
// Acepta un objeto plano clave -> valor; las claves fuera del allow-list se ignoran.
func (h *SettingsHandler) Upsert(c *fiber.Ctx) error {
	var in map[string]string
	if err := c.BodyParser(&in); err != nil || in == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Upsert(in); err != nil {
		log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("actualizar configuración")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de persistencia"})
	}
	return c.JSON(fiber.Map{"message": "configuración actualizada"})
}
