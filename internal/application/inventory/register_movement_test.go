package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: implementan los puertos de repositorio para probar los
// casos de uso sin PostgreSQL. El kardex fake conserva el orden de inserción.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return f.ListAll() }
func (f *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range f.products {
		list = append(list, p)
	}
	return list, nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func newFakeLocationRepo(locations ...*entity.Location) *fakeLocationRepo {
	m := make(map[string]*entity.Location)
	for _, l := range locations {
		m[l.ID] = l
	}
	return &fakeLocationRepo{locations: m}
}

func (f *fakeLocationRepo) Create(l *entity.Location) error { f.locations[l.ID] = l; return nil }
func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.locations[id], nil
}
func (f *fakeLocationRepo) List(limit, offset int) ([]*entity.Location, error) { return f.ListAll() }
func (f *fakeLocationRepo) ListAll() ([]*entity.Location, error) {
	var list []*entity.Location
	for _, l := range f.locations {
		list = append(list, l)
	}
	return list, nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
	failWith  error // si no es nil, Create falla sin registrar nada
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) ListAll() ([]*entity.Movement, error) {
	return f.movements, nil
}

func (f *fakeMovementRepo) ListRecent(limit, offset int) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for i := len(f.movements) - 1; i >= 0; i-- {
		list = append(list, f.movements[i])
	}
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

// fakeTxRunner ejecuta el callback directamente con los repos fake (sin BD).
type fakeTxRunner struct {
	movRepo      *fakeMovementRepo
	productRepo  *fakeProductRepo
	locationRepo *fakeLocationRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) error) error {
	return fn(f.movRepo, f.productRepo, f.locationRepo)
}

// ── Arranque común ────────────────────────────────────────────────────────────

type kardexFixture struct {
	uc       *appinventory.RegisterMovementUseCase
	movRepo  *fakeMovementRepo
	products *fakeProductRepo
}

func newKardexFixture() *kardexFixture {
	products := newFakeProductRepo(
		&entity.Product{ID: "prod-laptop", Name: "Laptop Pro", CreatedAt: time.Now()},
		&entity.Product{ID: "prod-monitor", Name: "Monitor 27", CreatedAt: time.Now()},
	)
	locations := newFakeLocationRepo(
		&entity.Location{ID: "loc-a", Name: "Bodega A", CreatedAt: time.Now()},
		&entity.Location{ID: "loc-b", Name: "Bodega B", CreatedAt: time.Now()},
	)
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{movRepo: movRepo, productRepo: products, locationRepo: locations}
	return &kardexFixture{
		uc:       appinventory.NewRegisterMovementUseCase(tx, products, locations),
		movRepo:  movRepo,
		products: products,
	}
}

func registerInput(productID, from, to string, qty decimal.Decimal) appinventory.MovementInputDTO {
	return appinventory.MovementInputDTO{
		UserID:         "user-1",
		ProductID:      productID,
		FromLocationID: from,
		ToLocationID:   to,
		Quantity:       qty,
	}
}

// ── Casos de éxito ────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaOK(t *testing.T) {
	fx := newKardexFixture()

	mov, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "", "loc-a", decimal.NewFromInt(50)))

	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.NotEmpty(t, mov.ID, "el movimiento admitido debe llevar ID recién generado")
	assert.False(t, mov.CreatedAt.IsZero(), "el movimiento admitido debe llevar timestamp")
	assert.Equal(t, entity.MovementKindIN, mov.Kind())
	assert.Len(t, fx.movRepo.movements, 1, "una admisión exitosa agrega exactamente un registro")
}

func TestRegisterMovement_TrasladoOK(t *testing.T) {
	fx := newKardexFixture()

	mov, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "loc-a", "loc-b", decimal.NewFromInt(5)))

	require.NoError(t, err)
	assert.Equal(t, entity.MovementKindTRANSFER, mov.Kind())
	// Un traslado es UN evento con dos efectos, no dos filas.
	assert.Len(t, fx.movRepo.movements, 1)
}

func TestRegisterMovement_SalidaOK(t *testing.T) {
	fx := newKardexFixture()

	mov, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "loc-b", "", decimal.NewFromInt(1)))

	require.NoError(t, err)
	assert.Equal(t, entity.MovementKindOUT, mov.Kind())
}

// ── Rechazos de validación: cada uno con error específico y kardex intacto ────

func TestRegisterMovement_RechazaCantidadCero(t *testing.T) {
	fx := newKardexFixture()

	_, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "", "loc-a", decimal.Zero))

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, fx.movRepo.movements, "un rechazo no debe modificar el kardex")
}

func TestRegisterMovement_RechazaCantidadNegativa(t *testing.T) {
	fx := newKardexFixture()

	_, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "", "loc-a", decimal.NewFromInt(-5)))

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, fx.movRepo.movements)
}

func TestRegisterMovement_RechazaCantidadNoEntera(t *testing.T) {
	fx := newKardexFixture()

	_, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "", "loc-a", decimal.RequireFromString("2.5")))

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity,
		"el kardex solo admite cantidades enteras")
	assert.Empty(t, fx.movRepo.movements)
}

func TestRegisterMovement_RechazaSinExtremos(t *testing.T) {
	fx := newKardexFixture()

	_, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "", "", decimal.NewFromInt(5)))

	assert.ErrorIs(t, err, domain.ErrMissingEndpoint,
		"un movimiento sin origen ni destino no representa transferencia física alguna")
	assert.Empty(t, fx.movRepo.movements)
}

func TestRegisterMovement_RechazaAutoTraslado(t *testing.T) {
	fx := newKardexFixture()

	_, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "loc-a", "loc-a", decimal.NewFromInt(5)))

	assert.ErrorIs(t, err, domain.ErrSameLocation,
		"origen == destino se rechaza en la puerta de validación")
	assert.Empty(t, fx.movRepo.movements)
}

func TestRegisterMovement_RechazaProductoInexistente(t *testing.T) {
	fx := newKardexFixture()

	_, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-fantasma", "", "loc-a", decimal.NewFromInt(5)))

	assert.ErrorIs(t, err, domain.ErrUnknownReference)
	assert.Empty(t, fx.movRepo.movements)
}

func TestRegisterMovement_RechazaUbicacionInexistente(t *testing.T) {
	fx := newKardexFixture()

	_, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "loc-fantasma", "loc-a", decimal.NewFromInt(5)))

	assert.ErrorIs(t, err, domain.ErrUnknownReference)
	assert.Empty(t, fx.movRepo.movements)
}

// TestRegisterMovement_FalloDePersistencia: si el almacén rechaza la inserción
// la operación falla completa, sin estado parcial, y se reporta como
// ErrPersistence (el caller puede reintentar la sumisión entera).
func TestRegisterMovement_FalloDePersistencia(t *testing.T) {
	fx := newKardexFixture()
	fx.movRepo.failWith = errors.New("conexión perdida")

	_, err := fx.uc.RegisterMovement(context.Background(),
		registerInput("prod-laptop", "", "loc-a", decimal.NewFromInt(5)))

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, fx.movRepo.movements, "el fallo del almacén no debe dejar efecto parcial")
}
