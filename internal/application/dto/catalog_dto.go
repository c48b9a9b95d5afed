package dto

import "github.com/shopspring/decimal"

// ProductResponse producto activo del catálogo (GET /api/products).
type ProductResponse struct {
	ID          int64           `json:"id"`
	Code        string          `json:"product_code"`
	Name        string          `json:"product_name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Unit        string          `json:"unit"`
}

// CustomerResponse cliente del catálogo (GET /api/customers).
type CustomerResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"customer_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}
