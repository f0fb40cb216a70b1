package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Entrada: solo to_location_id. Salida: solo from_location_id. Traslado: ambos.
type RegisterMovementRequest struct {
	ProductID      string          `json:"product_id"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// MovementResponse salida de un movimiento del kardex.
type MovementResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
	Kind           string          `json:"kind"` // IN | OUT | TRANSFER
	Quantity       decimal.Decimal `json:"quantity"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MovementListResponse lista de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
