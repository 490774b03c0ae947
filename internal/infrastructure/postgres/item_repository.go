package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste la ficha de un material. Código duplicado -> ErrDuplicate;
// categoría inexistente -> ErrNotFound.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, code, name, category_id, specification, unit, supplier,
		                   purchase_price, selling_price, min_stock, max_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Code, item.Name, item.CategoryID, item.Specification, item.Unit,
		item.Supplier, item.PurchasePrice, item.SellingPrice, item.MinStock, item.MaxStock,
		item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene la ficha de un material. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `
		SELECT id, code, name, category_id, specification, unit, supplier,
		       purchase_price, selling_price, min_stock, max_stock, created_at
		FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Code, &it.Name, &it.CategoryID, &it.Specification, &it.Unit,
		&it.Supplier, &it.PurchasePrice, &it.SellingPrice, &it.MinStock, &it.MaxStock,
		&it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// List devuelve todos los items con la categoría resuelta.
func (r *ItemRepo) List(ctx context.Context) ([]repository.ItemWithCategory, error) {
	return r.Search(ctx, repository.ItemFilter{})
}

// Search filtra items. Keyword es substring sensible a mayúsculas (LIKE, la
// collation por defecto del store) sobre código O nombre; categoría y
// proveedor son igualdad exacta. Campos vacíos no filtran; los filtros se
// componen con AND.
func (r *ItemRepo) Search(ctx context.Context, filter repository.ItemFilter) ([]repository.ItemWithCategory, error) {
	query := `
		SELECT i.id, i.code, i.name, i.category_id, i.specification, i.unit, i.supplier,
		       i.purchase_price, i.selling_price, i.min_stock, i.max_stock, i.created_at,
		       c.name
		FROM items i
		JOIN categories c ON i.category_id = c.id
		WHERE ($1 = '' OR i.code LIKE '%' || $1 || '%' OR i.name LIKE '%' || $1 || '%')
		  AND ($2 = '' OR c.name = $2)
		  AND ($3 = '' OR i.supplier = $3)
		ORDER BY i.created_at`
	rows, err := r.q.Query(ctx, query, filter.Keyword, filter.CategoryName, filter.Supplier)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	var list []repository.ItemWithCategory
	for rows.Next() {
		var row repository.ItemWithCategory
		if err := rows.Scan(
			&row.ID, &row.Code, &row.Name, &row.CategoryID, &row.Specification, &row.Unit,
			&row.Supplier, &row.PurchasePrice, &row.SellingPrice, &row.MinStock, &row.MaxStock,
			&row.CreatedAt, &row.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
