package repository

import "context"

// StatusRow fila cruda para el evaluador de estado: ficha del item más el
// stock actual agregado sobre sus filas de balance (0 si no hay filas).
// La clasificación no viene del store: la calcula el dominio en cada lectura.
type StatusRow struct {
	ItemID       string
	ItemCode     string
	ItemName     string
	CategoryName string
	Unit         string
	MinStock     int64
	MaxStock     int64
	CurrentStock int64
}

// StatusFilter filtros de la consulta de estado. Campos vacíos no filtran.
type StatusFilter struct {
	Keyword      string
	CategoryName string
}

// StatusRepository puerto de lectura agregada item + balances.
type StatusRepository interface {
	ListStatusRows(ctx context.Context, filter StatusFilter) ([]StatusRow, error)
}
