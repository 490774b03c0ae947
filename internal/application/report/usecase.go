// Package report arma los reportes descargables del almacén: el reporte de
// estado de inventario en PDF y la exportación del ledger en XML. El armado
// de datos vive aquí; el formato concreto queda detrás de los puertos.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StatusRow fila del reporte de estado: estado de stock más la valoración
// (precio de compra x stock actual).
type StatusRow struct {
	dto.StockStatusResponse
	StockValue decimal.Decimal
}

// StatusReport datos completos del reporte de estado de inventario.
type StatusReport struct {
	Title        string
	GeneratedAt  time.Time
	Rows         []StatusRow
	TotalItems   int
	Insufficient int
	Excess       int
	TotalValue   decimal.Decimal
}

// StatusPDFGenerator puerto del generador de PDF.
type StatusPDFGenerator interface {
	GenerateStatusPDF(ctx context.Context, report *StatusReport) ([]byte, error)
}

// LedgerExporter puerto del exportador del ledger.
type LedgerExporter interface {
	ExportLedger(ctx context.Context, receipts, issues []dto.TransactionResponse) ([]byte, error)
}

// StatusLister lectura del evaluador de estado.
type StatusLister interface {
	ListStatus(ctx context.Context) ([]dto.StockStatusResponse, error)
}

// LedgerHistory lectura del historial del ledger.
type LedgerHistory interface {
	ListReceipts(ctx context.Context) ([]dto.TransactionResponse, error)
	ListIssues(ctx context.Context) ([]dto.TransactionResponse, error)
}

// UseCase genera los reportes.
type UseCase struct {
	statuses  StatusLister
	history   LedgerHistory
	itemRepo  repository.ItemRepository
	generator StatusPDFGenerator
	exporter  LedgerExporter
	now       func() time.Time
}

// New construye el caso de uso inyectando todas sus dependencias.
func New(
	statuses StatusLister,
	history LedgerHistory,
	itemRepo repository.ItemRepository,
	generator StatusPDFGenerator,
	exporter LedgerExporter,
) *UseCase {
	return &UseCase{
		statuses:  statuses,
		history:   history,
		itemRepo:  itemRepo,
		generator: generator,
		exporter:  exporter,
		now:       time.Now,
	}
}

// StatusPDF arma el reporte de estado completo y lo rinde como PDF.
// La valoración usa el precio de compra de la ficha de cada item.
func (uc *UseCase) StatusPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	rows, err := uc.statuses.ListStatus(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar estado: %w", err)
	}

	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar items: %w", err)
	}
	priceByID := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		priceByID[it.ID] = it.PurchasePrice
	}

	generatedAt := uc.now()
	rep := &StatusReport{
		Title:       "Reporte de Estado de Inventario",
		GeneratedAt: generatedAt,
		Rows:        make([]StatusRow, 0, len(rows)),
		TotalItems:  len(rows),
	}
	for _, r := range rows {
		value := priceByID[r.ItemID].Mul(decimal.NewFromInt(r.CurrentStock))
		switch r.Status {
		case inventory.StatusInsufficient:
			rep.Insufficient++
		case inventory.StatusExcess:
			rep.Excess++
		}
		rep.TotalValue = rep.TotalValue.Add(value)
		rep.Rows = append(rep.Rows, StatusRow{StockStatusResponse: r, StockValue: value})
	}

	pdfBytes, err = uc.generator.GenerateStatusPDF(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("estado_inventario_%s.pdf", generatedAt.Format("20060102_150405"))
	return pdfBytes, filename, nil
}

// LedgerXML exporta todas las entradas y salidas del ledger en XML.
func (uc *UseCase) LedgerXML(ctx context.Context) (xmlBytes []byte, filename string, err error) {
	receipts, err := uc.history.ListReceipts(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar entradas: %w", err)
	}
	issues, err := uc.history.ListIssues(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar salidas: %w", err)
	}

	xmlBytes, err = uc.exporter.ExportLedger(ctx, receipts, issues)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: exportación fallida: %w", err)
	}
	filename = fmt.Sprintf("ledger_%s.xml", uc.now().Format("20060102_150405"))
	return xmlBytes, filename, nil
}
