package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes derivados del kardex.
type ReportHandler struct {
	report *inventory.BalanceReportUseCase
	pdf    *inventory.BalancePDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(report *inventory.BalanceReportUseCase, pdf *inventory.BalancePDFUseCase) *ReportHandler {
	return &ReportHandler{report: report, pdf: pdf}
}

// GetBalanceReport godoc
// @Summary      Reporte de saldos
// @Description  Saldos netos por (producto, ubicación), sin pares en cero,
// @Description  ordenados por producto y ubicación.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/balance [get]
func (h *ReportHandler) GetBalanceReport(c *fiber.Ctx) error {
	out, err := h.report.GetBalanceReport()
	if err != nil {
		if errors.Is(err, domain.ErrInconsistentLedger) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LEDGER_INCONSISTENT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetBalanceReportPDF godoc
// @Summary      Reporte de saldos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/balance/pdf [get]
func (h *ReportHandler) GetBalanceReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdf.GenerateBalancePDF(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrInconsistentLedger) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LEDGER_INCONSISTENT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("saldos-%s.pdf", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
