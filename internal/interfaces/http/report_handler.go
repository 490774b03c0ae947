package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/report"
)

// ReportHandler maneja la descarga de reportes.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StatusPDF descarga el reporte de estado de inventario en PDF.
func (h *ReportHandler) StatusPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.StatusPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// LedgerXML descarga la exportación XML del ledger completo.
func (h *ReportHandler) LedgerXML(c *fiber.Ctx) error {
	xmlBytes, filename, err := h.uc.LedgerXML(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(xmlBytes)
}
