package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// BalanceReportUseCase deriva el reporte de saldos: escanea el kardex completo,
// agrega por (producto, ubicación) y proyecta los IDs a nombres solo en la
// frontera de presentación.
type BalanceReportUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewBalanceReportUseCase construye el caso de uso.
func NewBalanceReportUseCase(
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *BalanceReportUseCase {
	return &BalanceReportUseCase{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// GetBalanceReport calcula los saldos netos y los devuelve como lista plana,
// sin pares en cero, ordenada por (producto, ubicación).
//
// Si el kardex referencia una entidad inexistente, se devuelve
// ErrInconsistentLedger: preferimos reportar la falla a entregar un reporte
// con filas omitidas en silencio.
func (uc *BalanceReportUseCase) GetBalanceReport() (*dto.BalanceReportResponse, error) {
	movements, err := uc.movementRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("escanear kardex: %w", err)
	}

	balances, err := inventory.ComputeBalances(movements)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	locations, err := uc.locationRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listar ubicaciones: %w", err)
	}

	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	locationNames := make(map[string]string, len(locations))
	for _, l := range locations {
		locationNames[l.ID] = l.Name
	}

	items := make([]dto.BalanceEntry, 0, len(balances))
	for key, qty := range balances {
		productName, ok := productNames[key.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrInconsistentLedger, key.ProductID)
		}
		locationName, ok := locationNames[key.LocationID]
		if !ok {
			return nil, fmt.Errorf("%w: ubicación %s", domain.ErrInconsistentLedger, key.LocationID)
		}
		items = append(items, dto.BalanceEntry{
			Product:  productName,
			Location: locationName,
			Quantity: qty,
		})
	}

	// Orden determinista para testabilidad y salida estable.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Product != items[j].Product {
			return items[i].Product < items[j].Product
		}
		return items[i].Location < items[j].Location
	})

	return &dto.BalanceReportResponse{
		Items:       items,
		Total:       len(items),
		GeneratedAt: time.Now(),
	}, nil
}

// ListRecentMovements devuelve los movimientos más recientes primero (vista
// de auditoría; el orden relativo de inserciones casi simultáneas no está
// garantizado más allá del timestamp asignado).
func (uc *BalanceReportUseCase) ListRecentMovements(limit, offset int) (*dto.MovementListResponse, error) {
	movements, err := uc.movementRepo.ListRecent(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.MovementResponse{
			ID:             m.ID,
			ProductID:      m.ProductID,
			FromLocationID: m.FromLocationID,
			ToLocationID:   m.ToLocationID,
			Kind:           m.Kind(),
			Quantity:       m.Quantity,
			CreatedAt:      m.CreatedAt,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
