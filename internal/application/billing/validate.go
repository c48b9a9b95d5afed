package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcaicedo/facturas-api/internal/application/dto"
	"github.com/jcaicedo/facturas-api/internal/domain"
)

// validate revisa el request completo y acumula todas las violaciones, cada una
// identificada por campo. Corre antes de cualquier acceso a la base.
func (uc *InvoiceUseCase) validate(in dto.CreateInvoiceRequest) *domain.ValidationError {
	verr := &domain.ValidationError{}

	if in.CustomerID < 1 {
		verr.Add("customer_id", "requerido y debe ser un id numérico >= 1")
	}
	if in.InvoiceDate == "" {
		verr.Add("invoice_date", "requerida, formato YYYY-MM-DD")
	} else if !validDate(in.InvoiceDate) {
		verr.Add("invoice_date", "fecha inválida, formato YYYY-MM-DD")
	}
	if in.DueDate != "" && !validDate(in.DueDate) {
		verr.Add("due_date", "fecha inválida, formato YYYY-MM-DD")
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() || in.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			verr.Add("tax_rate", "debe estar entre 0 y 100")
		}
	}
	if len(in.Items) == 0 {
		verr.Add("items", "se requiere al menos una línea")
	}
	for i, item := range in.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if item.ProductID < 1 {
			verr.Add(prefix+".product_id", "requerido y debe ser un id numérico >= 1")
		}
		if !item.Quantity.IsPositive() {
			verr.Add(prefix+".quantity", "debe ser mayor que 0")
		}
		if item.UnitPrice.IsNegative() {
			verr.Add(prefix+".unit_price", "no puede ser negativo")
		}
		if strings.TrimSpace(item.Description) == "" {
			verr.Add(prefix+".description", "requerida")
		}
	}
	return verr
}

// validDate acepta solo fechas calendario reales en formato YYYY-MM-DD estricto.
// time.Parse rechaza 2026-02-30 pero tolera "2026-2-3"; el round-trip exige los
// ceros a la izquierda.
func validDate(s string) bool {
	t, err := time.Parse(dateLayout, s)
	return err == nil && t.Format(dateLayout) == s
}
