package domain

import "github.com/shopspring/decimal"

func init() {
	// Money travels as plain JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. Stock reflects what the catalog currently
// holds; the order workflow reads it during validation but never writes
// it back.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Category    string          `json:"categoria"`
	Stock       int             `json:"stock"`
	Image       string          `json:"imagen"`
	Rating      float64         `json:"rating"`
}
