package dto

// ErrorResponse cuerpo de error HTTP. Fields solo va poblado en errores de
// validación (code VALIDATION).
type ErrorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []FieldErrorResponse `json:"fields,omitempty"`
}

// FieldErrorResponse violación de validación identificada por campo.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
