package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

type fakeStatuses struct {
	rows []dto.StockStatusResponse
}

func (f *fakeStatuses) ListStatus(context.Context) ([]dto.StockStatusResponse, error) {
	return f.rows, nil
}

type fakeHistory struct {
	receipts, issues []dto.TransactionResponse
}

func (f *fakeHistory) ListReceipts(context.Context) ([]dto.TransactionResponse, error) {
	return f.receipts, nil
}
func (f *fakeHistory) ListIssues(context.Context) ([]dto.TransactionResponse, error) {
	return f.issues, nil
}

type fakeItems struct {
	items []repository.ItemWithCategory
}

func (f *fakeItems) Create(context.Context, *entity.Item) error { return nil }
func (f *fakeItems) GetByID(context.Context, string) (*entity.Item, error) {
	return nil, nil
}
func (f *fakeItems) List(context.Context) ([]repository.ItemWithCategory, error) {
	return f.items, nil
}
func (f *fakeItems) Search(context.Context, repository.ItemFilter) ([]repository.ItemWithCategory, error) {
	return f.items, nil
}

type capturingGenerator struct {
	got *StatusReport
}

func (g *capturingGenerator) GenerateStatusPDF(_ context.Context, rep *StatusReport) ([]byte, error) {
	g.got = rep
	return []byte("%PDF"), nil
}

type capturingExporter struct {
	receipts, issues []dto.TransactionResponse
}

func (e *capturingExporter) ExportLedger(_ context.Context, receipts, issues []dto.TransactionResponse) ([]byte, error) {
	e.receipts, e.issues = receipts, issues
	return []byte("<ledger/>"), nil
}

func TestStatusPDFArmaElReporte(t *testing.T) {
	statuses := &fakeStatuses{rows: []dto.StockStatusResponse{
		{ItemID: "i1", ItemCode: "A-01", CurrentStock: 4, MinStock: 10, MaxStock: 100, Status: "insufficient"},
		{ItemID: "i2", ItemCode: "B-01", CurrentStock: 50, MinStock: 10, MaxStock: 100, Status: "normal"},
		{ItemID: "i3", ItemCode: "C-01", CurrentStock: 200, MinStock: 10, MaxStock: 100, Status: "excess"},
	}}
	items := &fakeItems{items: []repository.ItemWithCategory{
		{Item: entity.Item{ID: "i1", PurchasePrice: decimal.NewFromInt(100)}},
		{Item: entity.Item{ID: "i2", PurchasePrice: decimal.NewFromInt(10)}},
		{Item: entity.Item{ID: "i3", PurchasePrice: decimal.NewFromInt(1)}},
	}}
	gen := &capturingGenerator{}

	uc := New(statuses, &fakeHistory{}, items, gen, &capturingExporter{})
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }

	out, filename, err := uc.StatusPDF(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF"), out)
	require.Equal(t, "estado_inventario_20250601_100000.pdf", filename)

	rep := gen.got
	require.NotNil(t, rep)
	require.Equal(t, 3, rep.TotalItems)
	require.Equal(t, 1, rep.Insufficient)
	require.Equal(t, 1, rep.Excess)
	// 4*100 + 50*10 + 200*1
	require.True(t, rep.TotalValue.Equal(decimal.NewFromInt(1100)),
		"valor total esperado 1100, fue %s", rep.TotalValue)
	require.True(t, rep.Rows[0].StockValue.Equal(decimal.NewFromInt(400)))
}

func TestLedgerXMLPasaAmbasSecciones(t *testing.T) {
	history := &fakeHistory{
		receipts: []dto.TransactionResponse{{ID: "r1"}, {ID: "r2"}},
		issues:   []dto.TransactionResponse{{ID: "s1"}},
	}
	exp := &capturingExporter{}

	uc := New(&fakeStatuses{}, history, &fakeItems{}, &capturingGenerator{}, exp)
	out, filename, err := uc.LedgerXML(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("<ledger/>"), out)
	require.Contains(t, filename, "ledger_")
	require.Len(t, exp.receipts, 2)
	require.Len(t, exp.issues, 1)
}
