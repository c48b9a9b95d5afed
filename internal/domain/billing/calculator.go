// Package billing contiene la lógica pura de facturación: cálculo monetario y
// consecutivo de documentos. Sin I/O ni efectos secundarios.
package billing

import "github.com/shopspring/decimal"

// Redondeo monetario: dos decimales, round-half-away-from-zero (la semántica de
// decimal.Round). La corrección de los montos depende de este modo; está
// cubierto por tests en calculator_test.go.

var hundred = decimal.NewFromInt(100)

// LineTotal devuelve round(quantity * unitPrice, 2).
// Dominio: quantity > 0, unitPrice >= 0; el caller valida antes de invocar.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}

// Tax devuelve round(taxableAmount * ratePercent / 100, 2).
// Dominio: ratePercent en [0,100]; el caller valida antes de invocar.
func Tax(taxableAmount, ratePercent decimal.Decimal) decimal.Decimal {
	return taxableAmount.Mul(ratePercent).Div(hundred).Round(2)
}
