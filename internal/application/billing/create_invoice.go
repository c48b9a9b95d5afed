package billing

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcaicedo/facturas-api/internal/application/dto"
	"github.com/jcaicedo/facturas-api/internal/domain"
	domainbilling "github.com/jcaicedo/facturas-api/internal/domain/billing"
	"github.com/jcaicedo/facturas-api/internal/domain/entity"
	"github.com/jcaicedo/facturas-api/internal/domain/repository"
	"github.com/jcaicedo/facturas-api/pkg/money"
)

const dateLayout = "2006-01-02"

// Params parámetros de facturación inyectados desde la configuración en el
// arranque (no hay estado global).
type Params struct {
	NumberPrefix   string          // prefijo del consecutivo, ej. "INV"
	NumberPadding  int             // mínimo 3 dígitos
	DefaultTaxRate decimal.Decimal // porcentaje aplicado si el request no trae tax_rate
}

// InvoiceUseCase coordina la creación de facturas: validación, consecutivo,
// cálculo monetario y escritura atómica de cabecera y líneas.
type InvoiceUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
	settingRepo repository.SettingRepository
	params      Params
}

// NewInvoiceUseCase construye el caso de uso. invoiceRepo y settingRepo van
// atados al pool (solo lecturas); las escrituras pasan por txRunner.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	settingRepo repository.SettingRepository,
	params Params,
) *InvoiceUseCase {
	if params.NumberPadding < 3 {
		params.NumberPadding = 3
	}
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		settingRepo: settingRepo,
		params:      params,
	}
}

// CreateInvoice crea una factura. La validación corre completa antes de tocar
// la base; cualquier violación aborta el request sin estado parcial. La
// numeración, la cabecera y las líneas se escriben en una sola transacción:
// o queda todo o no queda nada.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceCreatedResponse, error) {
	if verr := uc.validate(in); verr.HasErrors() {
		return nil, verr
	}

	taxRate := uc.params.DefaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}

	// Cálculo monetario (puro, en el orden de entrada):
	// subtotal = Σ line_total; el impuesto solo grava las líneas taxable.
	subtotal := decimal.Zero
	taxableAmount := decimal.Zero
	lineTotals := make([]decimal.Decimal, len(in.Items))
	for i, item := range in.Items {
		lt := domainbilling.LineTotal(item.Quantity, item.UnitPrice)
		lineTotals[i] = lt
		subtotal = subtotal.Add(lt)
		if item.Taxable == nil || *item.Taxable {
			taxableAmount = taxableAmount.Add(lt)
		}
	}
	taxAmount := domainbilling.Tax(taxableAmount, taxRate)
	totalAmount := subtotal.Add(taxAmount)

	invoiceDate, _ := time.Parse(dateLayout, in.InvoiceDate) // ya validado
	var dueDate *time.Time
	if in.DueDate != "" {
		d, _ := time.Parse(dateLayout, in.DueDate)
		dueDate = &d
	}
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}

	now := time.Now()
	periodPrefix := domainbilling.PeriodPrefix(uc.params.NumberPrefix, now.Year())

	inv := &entity.Invoice{
		CustomerID:  in.CustomerID,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Subtotal:    subtotal,
		TaxRate:     taxRate,
		TaxAmount:   taxAmount,
		TotalAmount: totalAmount,
		Notes:       in.Notes,
		Status:      status,
		CreatedAt:   now,
	}

	err := uc.txRunner.RunInvoicing(ctx, func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		// Integridad referencial dentro de la tx (las FKs del esquema son el respaldo).
		customer, err := customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		for _, item := range in.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
		}

		// Consecutivo: lock del período, leer el último e incrementar. La misma
		// tx hace el insert; dos transacciones concurrentes no pueden calcular
		// el mismo número. El UNIQUE sobre invoice_number es el respaldo final.
		if err := invoiceRepo.LockPeriod(periodPrefix); err != nil {
			return err
		}
		last, err := invoiceRepo.LastNumberForPeriod(periodPrefix)
		if err != nil {
			return err
		}
		number, err := domainbilling.NextNumber(periodPrefix, last, uc.params.NumberPadding)
		if err != nil {
			return err
		}
		inv.Number = number

		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for i, item := range in.Items {
			line := &entity.InvoiceItem{
				InvoiceID:   inv.ID,
				ProductID:   item.ProductID,
				Description: strings.TrimSpace(item.Description),
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				LineTotal:   lineTotals[i],
				Taxable:     item.Taxable == nil || *item.Taxable,
				SortOrder:   i + 1,
			}
			if err := invoiceRepo.CreateItem(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.InvoiceCreatedResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		Subtotal:    inv.Subtotal,
		TaxRate:     inv.TaxRate,
		TaxAmount:   inv.TaxAmount,
		TotalAmount: inv.TotalAmount,
	}, nil
}

// GetInvoice obtiene la factura con los datos del cliente y las líneas en orden,
// cada una con código, nombre y unidad del producto. Retorna domain.ErrNotFound
// si el id no existe (resultado distinguible, no una falla).
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	inv, customer, err := uc.invoiceRepo.GetWithCustomer(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.ListItems(id)
	if err != nil {
		return nil, err
	}

	resp := &dto.InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		CustomerID:  inv.CustomerID,
		InvoiceDate: inv.InvoiceDate.Format(dateLayout),
		Subtotal:    inv.Subtotal,
		TaxRate:     inv.TaxRate,
		TaxAmount:   inv.TaxAmount,
		TotalAmount: inv.TotalAmount,
		Notes:       inv.Notes,
		Status:      inv.Status,
		Items:       make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	if inv.DueDate != nil {
		resp.DueDate = inv.DueDate.Format(dateLayout)
	}
	if customer != nil {
		resp.Customer = dto.CustomerResponse{
			ID:         customer.ID,
			Name:       customer.Name,
			Email:      customer.Email,
			Phone:      customer.Phone,
			Address:    customer.Address,
			City:       customer.City,
			PostalCode: customer.PostalCode,
			Country:    customer.Country,
		}
	}
	// default_currency es dato de presentación; si la lectura falla se omite el formateado.
	if settings, err := uc.settingRepo.GetAll(); err == nil {
		if code, ok := settings["default_currency"]; ok && code != "" {
			resp.TotalFormatted = money.Format(inv.TotalAmount, code)
		}
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Unit:        it.ProductUnit,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			Taxable:     it.Taxable,
			SortOrder:   it.SortOrder,
		})
	}
	return resp, nil
}
