package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemWithCategory fila de listado con el nombre de la categoría resuelto.
type ItemWithCategory struct {
	entity.Item
	CategoryName string
}

// ItemFilter filtros de búsqueda de items. Los campos vacíos no filtran.
// Keyword es substring sensible a mayúsculas sobre código O nombre, según la
// collation por defecto del store.
type ItemFilter struct {
	Keyword      string
	CategoryName string
	Supplier     string
}

// ItemRepository define el puerto de persistencia para la ficha de materiales.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context) ([]ItemWithCategory, error)
	Search(ctx context.Context, filter ItemFilter) ([]ItemWithCategory, error)
}
