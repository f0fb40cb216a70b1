package inventory

import (
	"context"
	"fmt"
)

// BalancePDFUseCase genera la representación PDF del reporte de saldos.
type BalancePDFUseCase struct {
	report    *BalanceReportUseCase
	generator BalancePDFGenerator
}

// NewBalancePDFUseCase construye el caso de uso.
func NewBalancePDFUseCase(report *BalanceReportUseCase, generator BalancePDFGenerator) *BalancePDFUseCase {
	return &BalancePDFUseCase{report: report, generator: generator}
}

// GenerateBalancePDF recalcula el reporte y lo renderiza como PDF.
func (uc *BalancePDFUseCase) GenerateBalancePDF(ctx context.Context) ([]byte, error) {
	report, err := uc.report.GetBalanceReport()
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateBalancePDF(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("renderizar PDF de saldos: %w", err)
	}
	return pdf, nil
}
