package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransactionRecord fila de historial con nombre de item, unidad y operador
// resueltos, para los listados de entradas y salidas.
type TransactionRecord struct {
	entity.StockTransaction
	ItemName     string
	Unit         string
	OperatorName string
}

// TransactionRepository define el puerto del ledger append-only. No existen
// operaciones de actualización ni borrado: las transacciones son inmutables.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.StockTransaction) error
	ListByKind(ctx context.Context, kind string) ([]TransactionRecord, error)
}
