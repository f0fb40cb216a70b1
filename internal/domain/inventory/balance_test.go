package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del agregador de saldos: el corazón del motor de kardex.
// Todos los saldos se derivan recorriendo el kardex completo; aquí se fijan
// las reglas de signo, el doble efecto de los traslados y el filtrado de ceros.
// ──────────────────────────────────────────────────────────────────────────────

const (
	prodLaptop  = "prod-laptop"
	prodMonitor = "prod-monitor"
	locA        = "loc-a"
	locB        = "loc-b"
)

func inbound(productID, toID string, qty int64) *entity.Movement {
	return &entity.Movement{ID: "mov-in", ProductID: productID, ToLocationID: toID, Quantity: decimal.NewFromInt(qty)}
}

func outbound(productID, fromID string, qty int64) *entity.Movement {
	return &entity.Movement{ID: "mov-out", ProductID: productID, FromLocationID: fromID, Quantity: decimal.NewFromInt(qty)}
}

func transfer(productID, fromID, toID string, qty int64) *entity.Movement {
	return &entity.Movement{ID: "mov-tr", ProductID: productID, FromLocationID: fromID, ToLocationID: toID, Quantity: decimal.NewFromInt(qty)}
}

func TestComputeBalances_EntradaUnica(t *testing.T) {
	balances, err := inventory.ComputeBalances([]*entity.Movement{
		inbound(prodLaptop, locA, 50),
	})
	require.NoError(t, err)

	require.Len(t, balances, 1, "una sola entrada debe producir exactamente un saldo")
	key := inventory.BalanceKey{ProductID: prodLaptop, LocationID: locA}
	assert.True(t, balances[key].Equal(decimal.NewFromInt(50)),
		"el saldo debe ser exactamente la cantidad de la entrada")
}

// TestComputeBalances_ConservacionTraslado verifica que un único traslado
// produce los dos efectos: -Q en origen y +Q en destino, ambos presentes.
func TestComputeBalances_ConservacionTraslado(t *testing.T) {
	balances, err := inventory.ComputeBalances([]*entity.Movement{
		transfer(prodLaptop, locA, locB, 5),
	})
	require.NoError(t, err)

	require.Len(t, balances, 2, "un traslado debe producir saldo en origen y en destino")
	assert.True(t, balances[inventory.BalanceKey{ProductID: prodLaptop, LocationID: locA}].Equal(decimal.NewFromInt(-5)),
		"el origen debe quedar en -Q")
	assert.True(t, balances[inventory.BalanceKey{ProductID: prodLaptop, LocationID: locB}].Equal(decimal.NewFromInt(5)),
		"el destino debe quedar en +Q")
}

// TestComputeBalances_SupresionSaldoCero: entrada de Q seguida de salida de Q
// deja saldo neto cero y el par desaparece del resultado.
func TestComputeBalances_SupresionSaldoCero(t *testing.T) {
	balances, err := inventory.ComputeBalances([]*entity.Movement{
		inbound(prodLaptop, locA, 10),
		outbound(prodLaptop, locA, 10),
	})
	require.NoError(t, err)
	assert.Empty(t, balances, "un par con saldo neto cero no debe reportarse")
}

// TestComputeBalances_AutoTraslado: origen == destino se compensa a cero y se
// filtra (la puerta de validación los rechaza; si uno ya existe en el kardex,
// no aporta saldo).
func TestComputeBalances_AutoTraslado(t *testing.T) {
	balances, err := inventory.ComputeBalances([]*entity.Movement{
		transfer(prodLaptop, locA, locA, 7),
	})
	require.NoError(t, err)
	assert.Empty(t, balances, "un auto-traslado aporta saldo neto cero")
}

// TestComputeBalances_LecturaIdempotente: dos lecturas sin escrituras
// intermedias producen resultados idénticos.
func TestComputeBalances_LecturaIdempotente(t *testing.T) {
	ledger := []*entity.Movement{
		inbound(prodLaptop, locA, 50),
		transfer(prodLaptop, locA, locB, 5),
		outbound(prodMonitor, locB, 3),
	}

	first, err1 := inventory.ComputeBalances(ledger)
	second, err2 := inventory.ComputeBalances(ledger)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "el recalculo sobre el mismo kardex debe ser idéntico")
}

// TestComputeBalances_EscenarioSemilla reproduce el escenario de referencia:
// Laptop +50 a A, traslado de 5 A→B, salida de 1 desde B.
// Saldos esperados: Laptop@A = 45, Laptop@B = 4.
func TestComputeBalances_EscenarioSemilla(t *testing.T) {
	balances, err := inventory.ComputeBalances([]*entity.Movement{
		inbound(prodLaptop, locA, 50),
		transfer(prodLaptop, locA, locB, 5),
		outbound(prodLaptop, locB, 1),
	})
	require.NoError(t, err)

	require.Len(t, balances, 2)
	assert.True(t, balances[inventory.BalanceKey{ProductID: prodLaptop, LocationID: locA}].Equal(decimal.NewFromInt(45)),
		"Laptop en A debe quedar en 45")
	assert.True(t, balances[inventory.BalanceKey{ProductID: prodLaptop, LocationID: locB}].Equal(decimal.NewFromInt(4)),
		"Laptop en B debe quedar en 4")
}

// TestComputeBalances_ProductosIndependientes: los saldos se agrupan por
// producto Y ubicación; productos distintos en la misma ubicación no se mezclan.
func TestComputeBalances_ProductosIndependientes(t *testing.T) {
	balances, err := inventory.ComputeBalances([]*entity.Movement{
		inbound(prodLaptop, locA, 50),
		inbound(prodMonitor, locA, 100),
	})
	require.NoError(t, err)

	require.Len(t, balances, 2)
	assert.True(t, balances[inventory.BalanceKey{ProductID: prodLaptop, LocationID: locA}].Equal(decimal.NewFromInt(50)))
	assert.True(t, balances[inventory.BalanceKey{ProductID: prodMonitor, LocationID: locA}].Equal(decimal.NewFromInt(100)))
}

func TestComputeBalances_KardexVacio(t *testing.T) {
	balances, err := inventory.ComputeBalances(nil)
	require.NoError(t, err)
	assert.Empty(t, balances)
}

// TestComputeBalances_FilaSinExtremos: una fila sin origen ni destino viola el
// invariante del kardex; el agregador la reporta como inconsistencia en vez de
// omitirla o calcular un saldo parcial.
func TestComputeBalances_FilaSinExtremos(t *testing.T) {
	_, err := inventory.ComputeBalances([]*entity.Movement{
		{ID: "mov-corrupto", ProductID: prodLaptop, Quantity: decimal.NewFromInt(1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInconsistentLedger,
		"una fila sin extremos debe reportarse como kardex inconsistente")
}
