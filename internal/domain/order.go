package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status every order carries at creation.
// No transition logic exists; orders are written once and never mutated.
const OrderStatusPending = "pendiente"

// Order is a finalized, priced purchase. Customer and DeliveryAddress are
// free-form client data and may be empty objects.
type Order struct {
	ID              int             `json:"id"`
	Customer        map[string]any  `json:"cliente"`
	Items           []LineItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"estado"`
	CreatedAt       time.Time       `json:"fecha_creacion"`
	DeliveryAddress map[string]any  `json:"direccion_entrega"`
}

// LineItem freezes the product name and unit price at order time, so later
// catalog edits do not affect persisted orders.
type LineItem struct {
	ProductID int             `json:"producto_id"`
	Name      string          `json:"nombre"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Quantity  int             `json:"cantidad"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
