package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de una factura. Pertenece a exactamente una
// factura (borrado en cascada con la cabecera) y es inmutable una vez escrita.
type InvoiceItem struct {
	ID          int64
	InvoiceID   int64
	ProductID   int64
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal // round(Quantity * UnitPrice, 2)
	Taxable     bool
	SortOrder   int // posición 1-based según el orden del request
}

// InvoiceItemView línea con los datos del producto resueltos (para lectura).
type InvoiceItemView struct {
	InvoiceItem
	ProductCode string
	ProductName string
	ProductUnit string
}
