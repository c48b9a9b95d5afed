package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Las facturas referencian el
// producto pero congelan descripción y precio en la línea al momento de crearla.
type Product struct {
	ID          int64
	Code        string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Unit        string // etiqueta de unidad: "unidad", "hora", "kg", ...
	Active      bool
}
