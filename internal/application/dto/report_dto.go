package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceEntry una fila del reporte de saldos: saldo neto de un producto en
// una ubicación. Solo se reportan pares con saldo distinto de cero.
type BalanceEntry struct {
	Product  string          `json:"product"`
	Location string          `json:"location"`
	Quantity decimal.Decimal `json:"quantity"`
}

// BalanceReportResponse reporte completo de saldos, ordenado por
// (producto, ubicación) para salida determinista.
type BalanceReportResponse struct {
	Items       []BalanceEntry `json:"items"`
	Total       int            `json:"total"`
	GeneratedAt time.Time      `json:"generated_at"`
}
