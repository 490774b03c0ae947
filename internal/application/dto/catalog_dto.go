package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id,omitempty" validate:"omitempty,uuid4"`
}

// CategoryResponse fila de listado de categorías con padre resuelto.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentName  string    `json:"parent_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Code          string          `json:"code" validate:"required,max=60"`
	Name          string          `json:"name" validate:"required,max=200"`
	CategoryID    string          `json:"category_id" validate:"required"`
	Specification string          `json:"specification"`
	Unit          string          `json:"unit" validate:"required,max=20"`
	Supplier      string          `json:"supplier"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MinStock      int64           `json:"min_stock" validate:"min=0"`
	MaxStock      int64           `json:"max_stock" validate:"min=0"`
}

// ItemResponse fila de listado de items con categoría resuelta.
type ItemResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	CategoryName  string          `json:"category_name"`
	Specification string          `json:"specification"`
	Unit          string          `json:"unit"`
	Supplier      string          `json:"supplier"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MinStock      int64           `json:"min_stock"`
	MaxStock      int64           `json:"max_stock"`
	CreatedAt     time.Time       `json:"created_at"`
}
