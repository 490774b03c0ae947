package status

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

type fakeStatusRepo struct {
	rows  []repository.StatusRow
	calls int
}

func (f *fakeStatusRepo) ListStatusRows(_ context.Context, filter repository.StatusFilter) ([]repository.StatusRow, error) {
	f.calls++
	var out []repository.StatusRow
	for _, r := range f.rows {
		if filter.Keyword != "" && !strings.Contains(r.ItemCode, filter.Keyword) && !strings.Contains(r.ItemName, filter.Keyword) {
			continue
		}
		if filter.CategoryName != "" && r.CategoryName != filter.CategoryName {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeBalanceSums struct{ sums map[string]int64 }

func (f *fakeBalanceSums) GetForUpdate(context.Context, string, string) (*entity.Balance, error) {
	return nil, nil
}
func (f *fakeBalanceSums) ListByItemForUpdate(context.Context, string) ([]*entity.Balance, error) {
	return nil, nil
}
func (f *fakeBalanceSums) ListByItem(context.Context, string) ([]*entity.Balance, error) {
	return nil, nil
}
func (f *fakeBalanceSums) SumByItem(_ context.Context, itemID string) (int64, error) {
	return f.sums[itemID], nil
}
func (f *fakeBalanceSums) Insert(context.Context, *entity.Balance) error        { return nil }
func (f *fakeBalanceSums) UpdateQuantity(context.Context, string, int64) error  { return nil }
func (f *fakeBalanceSums) Delete(context.Context, string) error                 { return nil }

func row(code string, category string, min, max, current int64) repository.StatusRow {
	return repository.StatusRow{
		ItemID: code, ItemCode: code, ItemName: "Item " + code,
		CategoryName: category, Unit: "u", MinStock: min, MaxStock: max, CurrentStock: current,
	}
}

func TestListStatusClassifies(t *testing.T) {
	repo := &fakeStatusRepo{rows: []repository.StatusRow{
		row("A", "Tools", 10, 100, 0),   // sin transacciones: insuficiente
		row("B", "Tools", 10, 100, 80),  // normal
		row("C", "Tools", 10, 100, 100), // exceso
	}}
	uc := New(repo, &fakeBalanceSums{})

	rows, err := uc.ListStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, inventory.StatusInsufficient, rows[0].Status)
	require.Equal(t, inventory.StatusNormal, rows[1].Status)
	require.Equal(t, inventory.StatusExcess, rows[2].Status)
}

// Dos llamadas sin mutación intermedia devuelven lo mismo; no hay caché que
// pueda divergir del store.
func TestListStatusIdempotent(t *testing.T) {
	repo := &fakeStatusRepo{rows: []repository.StatusRow{row("A", "Tools", 10, 100, 50)}}
	uc := New(repo, &fakeBalanceSums{})
	ctx := context.Background()

	first, err := uc.ListStatus(ctx)
	require.NoError(t, err)
	second, err := uc.ListStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 2, repo.calls) // cada llamada relee el store
}

func TestSearchFiltersCompose(t *testing.T) {
	repo := &fakeStatusRepo{rows: []repository.StatusRow{
		row("HAM-01", "Tools", 10, 100, 5),
		row("HAM-02", "Tools", 10, 100, 50),
		row("NAIL-01", "Fasteners", 10, 100, 5),
	}}
	uc := New(repo, &fakeBalanceSums{})
	ctx := context.Background()

	// Keyword + categoría + estado, compuestos con AND.
	rows, err := uc.Search(ctx, "HAM", "Tools", inventory.StatusInsufficient)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "HAM-01", rows[0].ItemCode)

	// Sentinel "all" desactiva categoría y estado.
	rows, err = uc.Search(ctx, "", dto.FilterAll, dto.FilterAll)
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestCurrentStock(t *testing.T) {
	uc := New(&fakeStatusRepo{}, &fakeBalanceSums{sums: map[string]int64{"X": 30}})
	ctx := context.Background()

	got, err := uc.CurrentStock(ctx, "X")
	require.NoError(t, err)
	require.Equal(t, int64(30), got)

	// Item sin filas de balance: 0.
	got, err = uc.CurrentStock(ctx, "desconocido")
	require.NoError(t, err)
	require.Zero(t, got)
}
