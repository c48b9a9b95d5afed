package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcaicedo/facturas-api/internal/domain/entity"
	"github.com/jcaicedo/facturas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID. Retorna nil, nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, product_code, product_name, description, unit_price, unit, active
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.UnitPrice, &p.Unit, &p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListActive lista los productos activos ordenados por nombre.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `
		SELECT id, product_code, product_name, description, unit_price, unit, active
		FROM products WHERE active ORDER BY product_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.UnitPrice, &p.Unit, &p.Active); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
