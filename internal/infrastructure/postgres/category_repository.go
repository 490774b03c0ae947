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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría. Nombre duplicado -> ErrDuplicate; padre
// inexistente -> ErrNotFound (integridad referencial del store).
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, parent_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.ParentID, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, COALESCE(parent_id::text, ''), created_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.ParentID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías con el nombre del padre resuelto
// (LEFT JOIN consigo misma), en orden de creación.
func (r *CategoryRepo) List(ctx context.Context) ([]repository.CategoryWithParent, error) {
	query := `
		SELECT c.id, c.name, c.description, COALESCE(c.parent_id::text, ''),
		       COALESCE(p.name, ''), c.created_at
		FROM categories c
		LEFT JOIN categories p ON c.parent_id = p.id
		ORDER BY c.created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryWithParent
	for rows.Next() {
		var row repository.CategoryWithParent
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.ParentID, &row.ParentName, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
