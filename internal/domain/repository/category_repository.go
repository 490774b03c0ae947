package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CategoryWithParent fila de listado con el nombre del padre resuelto.
type CategoryWithParent struct {
	entity.Category
	ParentName string
}

// CategoryRepository define el puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]CategoryWithParent, error)
}
