package billing

import (
	"context"

	"github.com/jcaicedo/facturas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repositorios
// atados a la tx. Si fn retorna error se hace rollback; si no, commit. El lock
// de numeración y la lectura del último consecutivo solo son seguros dentro de
// esta transacción.
type TxRunner interface {
	RunInvoicing(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
