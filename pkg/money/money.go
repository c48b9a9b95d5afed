// Package money formatea montos para presentación según la moneda configurada
// (configuration.default_currency). Los cálculos nunca pasan por aquí: este
// paquete es solo para campos de display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format devuelve el monto con el símbolo de la moneda ISO 4217 y dos decimales,
// ej. Format(250, "USD") -> "US$ 250.00". Un código desconocido cae a USD.
func Format(amount decimal.Decimal, isoCode string) string {
	unit, err := currency.ParseISO(isoCode)
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v %s", currency.Symbol(unit), amount.StringFixed(2))
}
