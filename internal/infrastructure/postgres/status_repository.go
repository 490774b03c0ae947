package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo lectura agregada item + balances para el evaluador de estado.
type StatusRepo struct {
	q Querier
}

func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

// ListStatusRows devuelve la ficha de cada item junto con su stock agregado.
// Los items sin filas de balance aparecen con stock 0 (LEFT JOIN). El filtro
// por palabra clave es sensible a mayúsculas, igual que la búsqueda de items.
func (r *StatusRepo) ListStatusRows(ctx context.Context, filter repository.StatusFilter) ([]repository.StatusRow, error) {
	query := `
		SELECT i.id, i.code, i.name, c.name, i.unit, i.min_stock, i.max_stock,
		       COALESCE(SUM(b.quantity), 0) AS current_stock
		FROM items i
		JOIN categories c ON c.id = i.category_id
		LEFT JOIN balances b ON b.item_id = i.id
		WHERE ($1 = '' OR i.code LIKE '%' || $1 || '%' OR i.name LIKE '%' || $1 || '%')
		  AND ($2 = '' OR c.name = $2)
		GROUP BY i.id, i.code, i.name, c.name, i.unit, i.min_stock, i.max_stock
		ORDER BY i.code`
	rows, err := r.q.Query(ctx, query, filter.Keyword, filter.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("list status rows: %w", err)
	}
	defer rows.Close()
	var list []repository.StatusRow
	for rows.Next() {
		var row repository.StatusRow
		if err := rows.Scan(
			&row.ItemID, &row.ItemCode, &row.ItemName, &row.CategoryName, &row.Unit,
			&row.MinStock, &row.MaxStock, &row.CurrentStock,
		); err != nil {
			return nil, fmt.Errorf("scan status row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
