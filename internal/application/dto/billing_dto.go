package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices.
// TaxRate es opcional; si no viene se usa el porcentaje configurado.
type CreateInvoiceRequest struct {
	CustomerID  int64                `json:"customer_id"`
	InvoiceDate string               `json:"invoice_date"`       // YYYY-MM-DD
	DueDate     string               `json:"due_date,omitempty"` // YYYY-MM-DD, opcional
	TaxRate     *decimal.Decimal     `json:"tax_rate,omitempty"` // porcentaje 0..100
	Notes       string               `json:"notes,omitempty"`
	Status      string               `json:"status,omitempty"` // default "draft"
	Items       []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea del request. Taxable es puntero para distinguir
// ausente (default true) de false explícito.
type InvoiceItemRequest struct {
	ProductID   int64           `json:"product_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Taxable     *bool           `json:"taxable,omitempty"`
}

// InvoiceCreatedResponse resultado de la creación (201).
type InvoiceCreatedResponse struct {
	ID          int64           `json:"id"`
	Number      string          `json:"invoice_number"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// InvoiceResponse factura completa para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID             int64                 `json:"id"`
	Number         string                `json:"invoice_number"`
	CustomerID     int64                 `json:"customer_id"`
	Customer       CustomerResponse      `json:"customer"`
	InvoiceDate    string                `json:"invoice_date"`
	DueDate        string                `json:"due_date,omitempty"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	TaxRate        decimal.Decimal       `json:"tax_rate"`
	TaxAmount      decimal.Decimal       `json:"tax_amount"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
	TotalFormatted string                `json:"total_formatted,omitempty"` // según default_currency configurada
	Notes          string                `json:"notes,omitempty"`
	Status         string                `json:"status"`
	Items          []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse línea con los datos del producto, en el orden de creación.
type InvoiceItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Taxable     bool            `json:"taxable"`
	SortOrder   int             `json:"sort_order"`
}
