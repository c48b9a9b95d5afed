package repository

import "github.com/jcaicedo/facturas-api/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo de productos.
type ProductRepository interface {
	GetByID(id int64) (*entity.Product, error)
	// ListActive devuelve los productos activos ordenados por nombre.
	ListActive() ([]*entity.Product, error)
}
