package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// BalanceRepository define el puerto de los balances materializados por
// (item, lote). Solo el motor del ledger escribe aquí; el evaluador de estado
// únicamente lee. Las filas con cantidad <= 0 se eliminan vía Delete, nunca
// se actualizan a cero.
type BalanceRepository interface {
	// GetForUpdate obtiene la fila (item, lote) bloqueándola dentro de la
	// transacción en curso. Devuelve nil si no existe.
	GetForUpdate(ctx context.Context, itemID, batchNumber string) (*entity.Balance, error)

	// ListByItemForUpdate devuelve todas las filas del item ordenadas por
	// created_at ascendente, bloqueadas para la descarga FIFO.
	ListByItemForUpdate(ctx context.Context, itemID string) ([]*entity.Balance, error)

	ListByItem(ctx context.Context, itemID string) ([]*entity.Balance, error)
	SumByItem(ctx context.Context, itemID string) (int64, error)

	Insert(ctx context.Context, balance *entity.Balance) error
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	Delete(ctx context.Context, id string) error
}
