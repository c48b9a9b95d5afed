package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrConflict: colisión del consecutivo de factura detectada al insertar
	// (violación del UNIQUE sobre invoice_number). Reintentable.
	ErrConflict = errors.New("conflicto con el estado actual")
)

// FieldError una violación de validación identificada por campo.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError agrupa todas las violaciones de un request.
// Se retorna antes de tocar la base de datos; el caller recibe cada campo
// rechazado con su motivo.
type ValidationError struct {
	Fields []FieldError
}

// Error implementa error.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validación fallida"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// Add registra una violación.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors indica si hay al menos una violación.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
