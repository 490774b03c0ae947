package entity

import "time"

// Balance representa el stock materializado de un (item, lote). BatchNumber
// vacío es una clave distinta de cualquier lote nombrado y representa el
// stock sin lote. Invariante: nunca se persiste una fila con cantidad <= 0;
// al llegar a cero la fila se elimina, no se deja en cero.
type Balance struct {
	ID             string
	ItemID         string
	BatchNumber    string
	Quantity       int64
	ProductionDate *time.Time
	ExpiryDate     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
