package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusDraft estado inicial de una factura recién creada.
const StatusDraft = "draft"

// Invoice representa la cabecera de una factura. Inmutable una vez creada:
// este sistema no edita ni anula facturas.
type Invoice struct {
	ID          int64
	Number      string // consecutivo único, ej. INV2026-001
	CustomerID  int64
	InvoiceDate time.Time
	DueDate     *time.Time
	Subtotal    decimal.Decimal
	TaxRate     decimal.Decimal // porcentaje 0..100
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	Notes       string
	Status      string
	CreatedAt   time.Time
}
