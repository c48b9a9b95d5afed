package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcaicedo/facturas-api/internal/domain"
	"github.com/jcaicedo/facturas-api/internal/domain/entity"
	"github.com/jcaicedo/facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// LockPeriod y LastNumberForPeriod solo tienen las garantías de numeración
// cuando el adaptador va atado a una transacción (vía TxRunner).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera y asigna invoice.ID.
// Una colisión del consecutivo (UNIQUE invoice_number) retorna domain.ErrConflict.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_number, customer_id, invoice_date, due_date, subtotal, tax_rate, tax_amount, total_amount, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		invoice.Number, invoice.CustomerID, invoice.InvoiceDate, invoice.DueDate,
		invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount, invoice.TotalAmount,
		invoice.Notes, invoice.Status, invoice.CreatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la factura y asigna item.ID.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (invoice_id, product_id, description, quantity, unit_price, line_total, taxable, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.InvoiceID, item.ProductID, item.Description, item.Quantity,
		item.UnitPrice, item.LineTotal, item.Taxable, item.SortOrder,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetWithCustomer obtiene la cabecera junto con los datos de contacto del cliente.
// Retorna nil, nil, nil si la factura no existe.
func (r *InvoiceRepo) GetWithCustomer(id int64) (*entity.Invoice, *entity.Customer, error) {
	query := `
		SELECT i.id, i.invoice_number, i.customer_id, i.invoice_date, i.due_date,
		       i.subtotal, i.tax_rate, i.tax_amount, i.total_amount, i.notes, i.status, i.created_at,
		       c.id, c.customer_name, c.email, c.phone, c.address, c.city, c.postal_code, c.country
		FROM invoices i
		INNER JOIN customers c ON i.customer_id = c.id
		WHERE i.id = $1`
	var inv entity.Invoice
	var cust entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.Number, &inv.CustomerID, &inv.InvoiceDate, &inv.DueDate,
		&inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.TotalAmount,
		&inv.Notes, &inv.Status, &inv.CreatedAt,
		&cust.ID, &cust.Name, &cust.Email, &cust.Phone, &cust.Address,
		&cust.City, &cust.PostalCode, &cust.Country,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get invoice with customer: %w", err)
	}
	return &inv, &cust, nil
}

// ListItems obtiene las líneas con los datos del producto, en orden de creación.
func (r *InvoiceRepo) ListItems(invoiceID int64) ([]*entity.InvoiceItemView, error) {
	query := `
		SELECT ii.id, ii.invoice_id, ii.product_id, ii.description, ii.quantity,
		       ii.unit_price, ii.line_total, ii.taxable, ii.sort_order,
		       p.product_code, p.product_name, p.unit
		FROM invoice_items ii
		INNER JOIN products p ON ii.product_id = p.id
		WHERE ii.invoice_id = $1
		ORDER BY ii.sort_order ASC`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItemView
	for rows.Next() {
		var v entity.InvoiceItemView
		if err := rows.Scan(
			&v.ID, &v.InvoiceID, &v.ProductID, &v.Description, &v.Quantity,
			&v.UnitPrice, &v.LineTotal, &v.Taxable, &v.SortOrder,
			&v.ProductCode, &v.ProductName, &v.ProductUnit,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// LockPeriod toma un advisory lock transaccional sobre el prefijo del período.
// Se libera solo en el commit/rollback, serializando la numeración frente a
// creaciones concurrentes.
func (r *InvoiceRepo) LockPeriod(periodPrefix string) error {
	_, err := r.q.Exec(context.Background(), `SELECT pg_advisory_xact_lock(hashtext($1))`, periodPrefix)
	if err != nil {
		return fmt.Errorf("lock numbering period: %w", err)
	}
	return nil
}

// LastNumberForPeriod devuelve el último consecutivo insertado para el prefijo
// del período, o "" si el período aún no tiene facturas.
func (r *InvoiceRepo) LastNumberForPeriod(periodPrefix string) (string, error) {
	query := `
		SELECT invoice_number FROM invoices
		WHERE invoice_number LIKE $1 || '%'
		ORDER BY id DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query, periodPrefix).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last invoice number: %w", err)
	}
	return number, nil
}
