// Package catalog expone los listados de solo lectura de clientes y productos.
// Sin lógica de negocio: passthrough hacia los repositorios.
package catalog

import (
	"github.com/jcaicedo/facturas-api/internal/application/dto"
	"github.com/jcaicedo/facturas-api/internal/domain/repository"
)

// UseCase listados del catálogo para la pantalla de creación de facturas.
type UseCase struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{customerRepo: customerRepo, productRepo: productRepo}
}

// ListCustomers devuelve todos los clientes ordenados por nombre.
func (uc *UseCase) ListCustomers() ([]dto.CustomerResponse, error) {
	list, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerResponse{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			Phone:      c.Phone,
			Address:    c.Address,
			City:       c.City,
			PostalCode: c.PostalCode,
			Country:    c.Country,
		})
	}
	return out, nil
}

// ListActiveProducts devuelve los productos activos ordenados por nombre.
func (uc *UseCase) ListActiveProducts() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductResponse{
			ID:          p.ID,
			Code:        p.Code,
			Name:        p.Name,
			Description: p.Description,
			UnitPrice:   p.UnitPrice,
			Unit:        p.Unit,
		})
	}
	return out, nil
}
