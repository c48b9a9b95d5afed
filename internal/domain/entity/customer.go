package entity

// Customer representa un cliente del catálogo (solo lectura para facturación).
type Customer struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Country    string
}
