// Package catalog administra el maestro de categorías e items. Ambos se crean
// una vez y no se editan ni borran en el alcance actual.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// maxTreeDepth corta la caminata de ancestros ante datos ya corruptos.
const maxTreeDepth = 64

// UseCase casos de uso del maestro de materiales.
type UseCase struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
	now          func() time.Time
}

// New construye el caso de uso.
func New(categoryRepo repository.CategoryRepository, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{categoryRepo: categoryRepo, itemRepo: itemRepo, now: time.Now}
}

// AddCategory crea una categoría. Nombre duplicado devuelve ErrDuplicate;
// padre inexistente, ErrNotFound. Si asignar el padre crearía un ciclo en el
// árbol devuelve ErrCategoryCycle (endurecimiento sobre el árbol plano, que
// por sí solo no lo impide).
func (uc *UseCase) AddCategory(ctx context.Context, input dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		ParentID:    input.ParentID,
		CreatedAt:   uc.now(),
	}

	if input.ParentID != "" {
		if err := uc.checkAncestry(ctx, cat.ID, input.ParentID); err != nil {
			return nil, err
		}
	}

	if err := uc.categoryRepo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt,
	}, nil
}

// checkAncestry camina la cadena de padres desde parentID; si alguno es la
// propia categoría habría un ciclo.
func (uc *UseCase) checkAncestry(ctx context.Context, categoryID, parentID string) error {
	current := parentID
	for depth := 0; current != "" && depth < maxTreeDepth; depth++ {
		if current == categoryID {
			return domain.ErrCategoryCycle
		}
		parent, err := uc.categoryRepo.GetByID(ctx, current)
		if err != nil {
			return err
		}
		if parent == nil {
			return domain.ErrNotFound
		}
		current = parent.ParentID
	}
	return nil
}

// ListCategories devuelve todas las categorías con el nombre del padre resuelto.
func (uc *UseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	rows, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CategoryResponse{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			ParentName:  row.ParentName,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

// AddItem crea la ficha de un material. Código duplicado devuelve
// ErrDuplicate; categoría inexistente, ErrNotFound. min <= max no se valida
// aquí: es responsabilidad del caller.
func (uc *UseCase) AddItem(ctx context.Context, input dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if input.Code == "" || input.Name == "" || input.MinStock < 0 || input.MaxStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}

	item := &entity.Item{
		ID:            uuid.New().String(),
		Code:          input.Code,
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		Specification: input.Specification,
		Unit:          input.Unit,
		Supplier:      input.Supplier,
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
		MinStock:      input.MinStock,
		MaxStock:      input.MaxStock,
		CreatedAt:     uc.now(),
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return itemToResponse(repository.ItemWithCategory{Item: *item, CategoryName: cat.Name}), nil
}

// ListItems devuelve la ficha completa con la categoría resuelta.
func (uc *UseCase) ListItems(ctx context.Context) ([]dto.ItemResponse, error) {
	rows, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return itemsToResponses(rows), nil
}

// SearchItems filtra por keyword (substring sensible a mayúsculas sobre
// código o nombre), categoría y proveedor. El sentinel "all" (o vacío)
// desactiva el filtro correspondiente; los filtros se componen con AND.
func (uc *UseCase) SearchItems(ctx context.Context, keyword, categoryFilter, supplierFilter string) ([]dto.ItemResponse, error) {
	filter := repository.ItemFilter{Keyword: keyword}
	if categoryFilter != "" && categoryFilter != dto.FilterAll {
		filter.CategoryName = categoryFilter
	}
	if supplierFilter != "" && supplierFilter != dto.FilterAll {
		filter.Supplier = supplierFilter
	}
	rows, err := uc.itemRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return itemsToResponses(rows), nil
}

func itemsToResponses(rows []repository.ItemWithCategory) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, *itemToResponse(row))
	}
	return out
}

func itemToResponse(row repository.ItemWithCategory) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            row.ID,
		Code:          row.Code,
		Name:          row.Name,
		CategoryName:  row.CategoryName,
		Specification: row.Specification,
		Unit:          row.Unit,
		Supplier:      row.Supplier,
		PurchasePrice: row.PurchasePrice,
		SellingPrice:  row.SellingPrice,
		MinStock:      row.MinStock,
		MaxStock:      row.MaxStock,
		CreatedAt:     row.CreatedAt,
	}
}
