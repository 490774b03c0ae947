package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa la ficha maestra de un material del almacén.
// Inmutable después de creado: no hay edición ni borrado en el alcance actual.
// MinStock <= MaxStock es responsabilidad del caller; el núcleo no lo valida.
type Item struct {
	ID            string
	Code          string // código único
	Name          string
	CategoryID    string
	Specification string
	Unit          string // unidad de medida
	Supplier      string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	MinStock      int64
	MaxStock      int64
	CreatedAt     time.Time
}
