package inventory

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la admisión de un movimiento al
// kardex sea atómica: o queda el registro completo o no queda nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error) error
}

// BalancePDFGenerator renderiza el reporte de saldos como documento PDF.
// Implementado en infrastructure/pdf con Maroto.
type BalancePDFGenerator interface {
	GenerateBalancePDF(ctx context.Context, report *dto.BalanceReportResponse) ([]byte, error)
}
