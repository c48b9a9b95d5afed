package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// Consecutivo de facturas: <prefijo><año>-<secuencia>, ej. INV2026-001.
// La secuencia arranca en 1 por año calendario y se deriva del último número
// persistido para el prefijo del período. La lectura del último número y el
// insert deben ejecutar en la misma transacción, serializados por el lock de
// período (ver postgres.InvoiceRepo.LockPeriod).

// PeriodPrefix construye el prefijo del período, ej. ("INV", 2026) -> "INV2026-".
func PeriodPrefix(prefix string, year int) string {
	return fmt.Sprintf("%s%d-", prefix, year)
}

// NextNumber deriva el siguiente consecutivo a partir del último número del
// período. lastNumber vacío significa que el período no tiene facturas y la
// secuencia arranca en 1. El sufijo se rellena con ceros hasta padding dígitos
// y crece sin truncarse al superarlo (INV2026-999 -> INV2026-1000).
func NextNumber(periodPrefix, lastNumber string, padding int) (string, error) {
	seq := 1
	if lastNumber != "" {
		suffix := strings.TrimPrefix(lastNumber, periodPrefix)
		if suffix == lastNumber {
			return "", fmt.Errorf("número %q no corresponde al período %q", lastNumber, periodPrefix)
		}
		last, err := strconv.Atoi(suffix)
		if err != nil {
			return "", fmt.Errorf("sufijo no numérico en %q: %w", lastNumber, err)
		}
		seq = last + 1
	}
	return fmt.Sprintf("%s%0*d", periodPrefix, padding, seq), nil
}
