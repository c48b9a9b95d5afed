package repository

import "github.com/jcaicedo/facturas-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas y sus líneas.
type InvoiceRepository interface {
	// Create inserta la cabecera y asigna invoice.ID (RETURNING id).
	// Una colisión del consecutivo retorna domain.ErrConflict.
	Create(invoice *entity.Invoice) error
	// CreateItem inserta una línea de la factura.
	CreateItem(item *entity.InvoiceItem) error
	// GetWithCustomer obtiene la cabecera junto con los datos de contacto del cliente.
	GetWithCustomer(id int64) (*entity.Invoice, *entity.Customer, error)
	// ListItems devuelve las líneas con los datos del producto, ordenadas por sort_order.
	ListItems(invoiceID int64) ([]*entity.InvoiceItemView, error)

	// LockPeriod serializa la numeración del período frente a creaciones
	// concurrentes. Solo tiene sentido dentro de una transacción; el lock se
	// libera en el commit/rollback.
	LockPeriod(periodPrefix string) error
	// LastNumberForPeriod devuelve el último consecutivo insertado cuyo número
	// empieza por el prefijo del período, o "" si el período no tiene facturas.
	LastNumberForPeriod(periodPrefix string) (string, error)
}
