package billing_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jcaicedo/facturas-api/internal/domain"
	"github.com/jcaicedo/facturas-api/internal/domain/entity"
	"github.com/jcaicedo/facturas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. El fakeTxRunner toma un
// snapshot antes de ejecutar fn y lo restaura si fn falla, imitando el
// rollback: ningún error deja filas a medias.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
}

func (r *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	list := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Active {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

type fakeInvoiceRepo struct {
	customers *fakeCustomerRepo
	products  *fakeProductRepo

	nextID      int64
	invoices    []*entity.Invoice
	items       []*entity.InvoiceItem
	lockedWith  []string
	failCreate  error // si no es nil, Create falla (simula caída de la base)
}

func (r *fakeInvoiceRepo) Create(invoice *entity.Invoice) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, existing := range r.invoices {
		if existing.Number == invoice.Number {
			return domain.ErrConflict
		}
	}
	r.nextID++
	invoice.ID = r.nextID
	stored := *invoice
	r.invoices = append(r.invoices, &stored)
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.nextID++
	item.ID = r.nextID
	stored := *item
	r.items = append(r.items, &stored)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetWithCustomer(id int64) (*entity.Invoice, *entity.Customer, error) {
	inv, err := r.GetByID(id)
	if err != nil || inv == nil {
		return nil, nil, err
	}
	return inv, r.customers.customers[inv.CustomerID], nil
}

func (r *fakeInvoiceRepo) ListItems(invoiceID int64) ([]*entity.InvoiceItemView, error) {
	var list []*entity.InvoiceItemView
	for _, it := range r.items {
		if it.InvoiceID != invoiceID {
			continue
		}
		view := &entity.InvoiceItemView{InvoiceItem: *it}
		if p := r.products.products[it.ProductID]; p != nil {
			view.ProductCode = p.Code
			view.ProductName = p.Name
			view.ProductUnit = p.Unit
		}
		list = append(list, view)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	return list, nil
}

func (r *fakeInvoiceRepo) LockPeriod(periodPrefix string) error {
	r.lockedWith = append(r.lockedWith, periodPrefix)
	return nil
}

func (r *fakeInvoiceRepo) LastNumberForPeriod(periodPrefix string) (string, error) {
	for i := len(r.invoices) - 1; i >= 0; i-- {
		number := r.invoices[i].Number
		if len(number) >= len(periodPrefix) && number[:len(periodPrefix)] == periodPrefix {
			return number, nil
		}
	}
	return "", nil
}

type fakeSettingRepo struct {
	values map[string]string
}

func (r *fakeSettingRepo) GetAll() (map[string]string, error) {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

func (r *fakeSettingRepo) Upsert(values map[string]string) error {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	for k, v := range values {
		r.values[k] = v
	}
	return nil
}

type fakeTxRunner struct {
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	invoices  *fakeInvoiceRepo
}

func (r *fakeTxRunner) RunInvoicing(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	invoicesBackup := append([]*entity.Invoice(nil), r.invoices.invoices...)
	itemsBackup := append([]*entity.InvoiceItem(nil), r.invoices.items...)
	idBackup := r.invoices.nextID

	if err := fn(r.customers, r.products, r.invoices); err != nil {
		r.invoices.invoices = invoicesBackup
		r.invoices.items = itemsBackup
		r.invoices.nextID = idBackup
		return err
	}
	return nil
}

// newFixture arma repos poblados con un cliente y dos productos de catálogo.
func newFixture() (*fakeTxRunner, *fakeInvoiceRepo, *fakeSettingRepo) {
	customers := &fakeCustomerRepo{customers: map[int64]*entity.Customer{
		1: {
			ID: 1, Name: "Acme Ltda", Email: "compras@acme.test", Phone: "555-0100",
			Address: "Calle 1 #2-3", City: "Bogotá", PostalCode: "110111", Country: "CO",
		},
	}}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		10: {ID: 10, Code: "SVC-01", Name: "Consultoría", UnitPrice: decimal.NewFromInt(100), Unit: "hora", Active: true},
		20: {ID: 20, Code: "MAT-02", Name: "Materiales", UnitPrice: decimal.NewFromInt(50), Unit: "unidad", Active: true},
	}}
	invoices := &fakeInvoiceRepo{customers: customers, products: products}
	runner := &fakeTxRunner{customers: customers, products: products, invoices: invoices}
	settings := &fakeSettingRepo{values: map[string]string{"default_currency": "USD", "tax_percent": "10"}}
	return runner, invoices, settings
}
