package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jcaicedo/facturas-api/pkg/money"
)

func TestFormat_DosDecimales(t *testing.T) {
	got := money.Format(decimal.NewFromInt(250), "USD")
	assert.True(t, strings.HasSuffix(got, "250.00"), "got %q", got)
}

func TestFormat_RedondeaDisplay(t *testing.T) {
	amount, _ := decimal.NewFromString("270.5")
	got := money.Format(amount, "EUR")
	assert.True(t, strings.HasSuffix(got, "270.50"), "got %q", got)
}

// Un código ISO desconocido cae al símbolo de USD en vez de fallar.
func TestFormat_CodigoInvalido(t *testing.T) {
	fallback := money.Format(decimal.NewFromInt(10), "???")
	usd := money.Format(decimal.NewFromInt(10), "USD")
	assert.Equal(t, usd, fallback)
}
