// Package status implementa el evaluador de estado de stock: stock actual por
// item (suma de sus filas de balance) y su clasificación frente a los umbrales
// min/max. Lectura pura: se recalcula desde los balances persistidos en cada
// llamada, nunca se cachea entre llamadas.
package status

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase evalúa el estado de inventario. Solo lee; nunca escribe balances.
type UseCase struct {
	statusRepo  repository.StatusRepository
	balanceRepo repository.BalanceRepository
}

// New construye el evaluador.
func New(statusRepo repository.StatusRepository, balanceRepo repository.BalanceRepository) *UseCase {
	return &UseCase{statusRepo: statusRepo, balanceRepo: balanceRepo}
}

// CurrentStock devuelve el stock total actual de un item: la suma de todas
// sus filas de balance, 0 si no existe ninguna.
func (uc *UseCase) CurrentStock(ctx context.Context, itemID string) (int64, error) {
	return uc.balanceRepo.SumByItem(ctx, itemID)
}

// ListStatus devuelve el estado de todos los items.
func (uc *UseCase) ListStatus(ctx context.Context) ([]dto.StockStatusResponse, error) {
	return uc.Search(ctx, "", dto.FilterAll, dto.FilterAll)
}

// Search devuelve el estado filtrado. keyword es substring sensible a
// mayúsculas sobre código o nombre; categoryFilter y statusFilter aceptan el
// sentinel "all" (o vacío) para no filtrar. Los filtros se componen con AND.
func (uc *UseCase) Search(ctx context.Context, keyword, categoryFilter, statusFilter string) ([]dto.StockStatusResponse, error) {
	filter := repository.StatusFilter{Keyword: keyword}
	if categoryFilter != "" && categoryFilter != dto.FilterAll {
		filter.CategoryName = categoryFilter
	}

	rows, err := uc.statusRepo.ListStatusRows(ctx, filter)
	if err != nil {
		return nil, err
	}

	byStatus := statusFilter != "" && statusFilter != dto.FilterAll
	out := make([]dto.StockStatusResponse, 0, len(rows))
	for _, row := range rows {
		st := inventory.Classify(row.CurrentStock, row.MinStock, row.MaxStock)
		if byStatus && st != statusFilter {
			continue
		}
		out = append(out, dto.StockStatusResponse{
			ItemID:       row.ItemID,
			ItemCode:     row.ItemCode,
			ItemName:     row.ItemName,
			CategoryName: row.CategoryName,
			Unit:         row.Unit,
			MinStock:     row.MinStock,
			MaxStock:     row.MaxStock,
			CurrentStock: row.CurrentStock,
			Status:       st,
		})
	}
	return out, nil
}
