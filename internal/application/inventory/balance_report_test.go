package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del reporte de saldos: proyección de IDs a nombres, orden determinista
// y detección de kardex inconsistente. El cálculo en sí se prueba en
// internal/domain/inventory.
// ──────────────────────────────────────────────────────────────────────────────

func newReportFixture(movements ...*entity.Movement) *appinventory.BalanceReportUseCase {
	products := newFakeProductRepo(
		&entity.Product{ID: "prod-laptop", Name: "Laptop Pro", CreatedAt: time.Now()},
		&entity.Product{ID: "prod-monitor", Name: "Monitor 27", CreatedAt: time.Now()},
	)
	locations := newFakeLocationRepo(
		&entity.Location{ID: "loc-a", Name: "Bodega A", CreatedAt: time.Now()},
		&entity.Location{ID: "loc-b", Name: "Bodega B", CreatedAt: time.Now()},
	)
	movRepo := &fakeMovementRepo{movements: movements}
	return appinventory.NewBalanceReportUseCase(movRepo, products, locations)
}

func mov(productID, from, to string, qty int64) *entity.Movement {
	return &entity.Movement{
		ID:             "mov-" + productID + from + to,
		ProductID:      productID,
		FromLocationID: from,
		ToLocationID:   to,
		Quantity:       decimal.NewFromInt(qty),
		CreatedAt:      time.Now(),
	}
}

// TestGetBalanceReport_EscenarioSemilla: +50 a A, 5 A→B, -1 desde B
// produce Laptop Pro@Bodega A = 45 y Laptop Pro@Bodega B = 4, en ese orden.
func TestGetBalanceReport_EscenarioSemilla(t *testing.T) {
	uc := newReportFixture(
		mov("prod-laptop", "", "loc-a", 50),
		mov("prod-laptop", "loc-a", "loc-b", 5),
		mov("prod-laptop", "loc-b", "", 1),
	)

	report, err := uc.GetBalanceReport()
	require.NoError(t, err)

	require.Len(t, report.Items, 2)
	assert.Equal(t, 2, report.Total)

	assert.Equal(t, "Laptop Pro", report.Items[0].Product)
	assert.Equal(t, "Bodega A", report.Items[0].Location)
	assert.True(t, report.Items[0].Quantity.Equal(decimal.NewFromInt(45)),
		"Laptop Pro en Bodega A debe quedar en 45")

	assert.Equal(t, "Laptop Pro", report.Items[1].Product)
	assert.Equal(t, "Bodega B", report.Items[1].Location)
	assert.True(t, report.Items[1].Quantity.Equal(decimal.NewFromInt(4)),
		"Laptop Pro en Bodega B debe quedar en 4")
}

// TestGetBalanceReport_OrdenDeterminista: el reporte sale ordenado por
// (producto, ubicación) sin importar el orden del kardex.
func TestGetBalanceReport_OrdenDeterminista(t *testing.T) {
	uc := newReportFixture(
		mov("prod-monitor", "", "loc-b", 3),
		mov("prod-laptop", "", "loc-b", 7),
		mov("prod-monitor", "", "loc-a", 2),
		mov("prod-laptop", "", "loc-a", 1),
	)

	report, err := uc.GetBalanceReport()
	require.NoError(t, err)

	require.Len(t, report.Items, 4)
	got := make([][2]string, 0, 4)
	for _, it := range report.Items {
		got = append(got, [2]string{it.Product, it.Location})
	}
	assert.Equal(t, [][2]string{
		{"Laptop Pro", "Bodega A"},
		{"Laptop Pro", "Bodega B"},
		{"Monitor 27", "Bodega A"},
		{"Monitor 27", "Bodega B"},
	}, got, "el orden debe ser (producto, ubicación) ascendente")
}

// TestGetBalanceReport_SuprimeSaldosCero: un par que quedó en cero no aparece,
// aunque el kardex sí lo mencione.
func TestGetBalanceReport_SuprimeSaldosCero(t *testing.T) {
	uc := newReportFixture(
		mov("prod-laptop", "", "loc-a", 10),
		mov("prod-laptop", "loc-a", "", 10),
		mov("prod-monitor", "", "loc-b", 5),
	)

	report, err := uc.GetBalanceReport()
	require.NoError(t, err)

	require.Len(t, report.Items, 1)
	assert.Equal(t, "Monitor 27", report.Items[0].Product)
}

// TestGetBalanceReport_SaldoNegativoVisible: el motor no impide saldos
// negativos (una salida sin stock previo queda en negativo y se reporta).
func TestGetBalanceReport_SaldoNegativoVisible(t *testing.T) {
	uc := newReportFixture(
		mov("prod-laptop", "loc-a", "", 3),
	)

	report, err := uc.GetBalanceReport()
	require.NoError(t, err)

	require.Len(t, report.Items, 1)
	assert.True(t, report.Items[0].Quantity.Equal(decimal.NewFromInt(-3)),
		"los saldos negativos se reportan, no se ocultan")
}

func TestGetBalanceReport_KardexVacio(t *testing.T) {
	uc := newReportFixture()

	report, err := uc.GetBalanceReport()
	require.NoError(t, err)
	assert.Empty(t, report.Items)
	assert.Equal(t, 0, report.Total)
}

// TestGetBalanceReport_KardexInconsistente: un movimiento que referencia un
// producto inexistente hace fallar el reporte completo con error específico.
func TestGetBalanceReport_KardexInconsistente(t *testing.T) {
	uc := newReportFixture(
		mov("prod-borrado", "", "loc-a", 5),
	)

	_, err := uc.GetBalanceReport()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInconsistentLedger,
		"una referencia rota se reporta, nunca se omite en silencio")
}

// ── Listado de movimientos recientes ─────────────────────────────────────────

func TestListRecentMovements_MasRecientesPrimero(t *testing.T) {
	uc := newReportFixture(
		mov("prod-laptop", "", "loc-a", 50),
		mov("prod-laptop", "loc-a", "loc-b", 5),
		mov("prod-laptop", "loc-b", "", 1),
	)

	out, err := uc.ListRecentMovements(50, 0)
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, entity.MovementKindOUT, out.Items[0].Kind, "el último insertado va primero")
	assert.Equal(t, entity.MovementKindTRANSFER, out.Items[1].Kind)
	assert.Equal(t, entity.MovementKindIN, out.Items[2].Kind)
}

func TestListRecentMovements_RespetaLimite(t *testing.T) {
	uc := newReportFixture(
		mov("prod-laptop", "", "loc-a", 1),
		mov("prod-laptop", "", "loc-a", 2),
		mov("prod-laptop", "", "loc-a", 3),
	)

	out, err := uc.ListRecentMovements(2, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}
