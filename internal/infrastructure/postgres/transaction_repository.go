package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del ledger append-only sobre PostgreSQL.
// Sin UPDATE ni DELETE: las transacciones son inmutables.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create inserta un asiento del ledger.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (
			id, kind, item_id, quantity, unit_price, total_amount,
			supplier, batch_number, production_date, expiry_date,
			recipient, purpose, operator_id, occurred_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.Kind, tx.ItemID, tx.Quantity, tx.UnitPrice, tx.TotalAmount,
		tx.Supplier, tx.BatchNumber, tx.ProductionDate, tx.ExpiryDate,
		tx.Recipient, tx.Purpose, tx.OperatorID, tx.OccurredAt, tx.Notes,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// ListByKind devuelve el historial de un tipo ordenado por fecha descendente,
// con nombre de item, unidad y nombre completo del operador resueltos.
func (r *TransactionRepo) ListByKind(ctx context.Context, kind string) ([]repository.TransactionRecord, error) {
	query := `
		SELECT t.id, t.kind, t.item_id, t.quantity, t.unit_price, t.total_amount,
		       t.supplier, t.batch_number, t.production_date, t.expiry_date,
		       t.recipient, t.purpose, t.operator_id, t.occurred_at, t.notes,
		       i.name, i.unit, u.full_name
		FROM stock_transactions t
		JOIN items i ON t.item_id = i.id
		JOIN users u ON t.operator_id = u.id
		WHERE t.kind = $1
		ORDER BY t.occurred_at DESC`
	rows, err := r.q.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []repository.TransactionRecord
	for rows.Next() {
		var rec repository.TransactionRecord
		if err := rows.Scan(
			&rec.ID, &rec.Kind, &rec.ItemID, &rec.Quantity, &rec.UnitPrice, &rec.TotalAmount,
			&rec.Supplier, &rec.BatchNumber, &rec.ProductionDate, &rec.ExpiryDate,
			&rec.Recipient, &rec.Purpose, &rec.OperatorID, &rec.OccurredAt, &rec.Notes,
			&rec.ItemName, &rec.Unit, &rec.OperatorName,
		); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
