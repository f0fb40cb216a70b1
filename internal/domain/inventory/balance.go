package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// BalanceKey identifica un saldo por par (producto, ubicación).
// Se agrupa por ID, no por nombre: los nombres se proyectan solo en la capa
// de presentación, así una colisión de nombres nunca fusiona saldos.
type BalanceKey struct {
	ProductID  string
	LocationID string
}

// ComputeBalances deriva el saldo neto por (producto, ubicación) recorriendo
// el kardex completo (servicio de dominio, sin estado).
//
// Reglas:
//   - destino presente  => +cantidad en (producto, destino)
//   - origen presente   => -cantidad en (producto, origen)
//   - un traslado tiene ambos extremos y produce los dos efectos desde un
//     único registro
//   - los pares con saldo exactamente cero se descartan del resultado
//     (distinto de "nunca mencionado": simplemente no se reporta)
//
// Es un recalculo total en cada lectura: no hay saldo cacheado que pueda
// desincronizarse del kardex. Costo O(n movimientos) por consulta.
func ComputeBalances(movements []*entity.Movement) (map[BalanceKey]decimal.Decimal, error) {
	balances := make(map[BalanceKey]decimal.Decimal)

	for _, m := range movements {
		if m.Kind() == "" {
			// Fila sin extremos: no representa transferencia física alguna.
			// No debe existir bajo los invariantes de la puerta de validación.
			return nil, fmt.Errorf("%w: movimiento %s sin origen ni destino", domain.ErrInconsistentLedger, m.ID)
		}
		if m.ToLocationID != "" {
			key := BalanceKey{ProductID: m.ProductID, LocationID: m.ToLocationID}
			balances[key] = balances[key].Add(m.Quantity)
		}
		if m.FromLocationID != "" {
			key := BalanceKey{ProductID: m.ProductID, LocationID: m.FromLocationID}
			balances[key] = balances[key].Sub(m.Quantity)
		}
	}

	for key, qty := range balances {
		if qty.IsZero() {
			delete(balances, key)
		}
	}
	return balances, nil
}
