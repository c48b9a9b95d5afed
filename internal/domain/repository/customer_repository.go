package repository

import "github.com/jcaicedo/facturas-api/internal/domain/entity"

// CustomerRepository define el puerto de lectura del catálogo de clientes.
// El core de facturación nunca muta clientes.
type CustomerRepository interface {
	GetByID(id int64) (*entity.Customer, error)
	// List devuelve todos los clientes ordenados por nombre.
	List() ([]*entity.Customer, error)
}
