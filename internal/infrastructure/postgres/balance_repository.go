package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implementación del puerto BalanceRepository sobre PostgreSQL.
// Solo el motor del ledger escribe aquí, siempre dentro de una transacción.
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

const balanceColumns = `id, item_id, batch_number, quantity, production_date, expiry_date, created_at, updated_at`

// GetForUpdate obtiene la fila (item, lote) bloqueándola (SELECT FOR UPDATE).
// Devuelve nil si no existe.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, itemID, batchNumber string) (*entity.Balance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM balances WHERE item_id = $1 AND batch_number = $2
		FOR UPDATE`
	var b entity.Balance
	err := r.q.QueryRow(ctx, query, itemID, batchNumber).Scan(
		&b.ID, &b.ItemID, &b.BatchNumber, &b.Quantity, &b.ProductionDate, &b.ExpiryDate,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return &b, nil
}

// ListByItemForUpdate devuelve las filas del item ordenadas por created_at
// ascendente (orden FIFO), bloqueadas para la descarga.
func (r *BalanceRepo) ListByItemForUpdate(ctx context.Context, itemID string) ([]*entity.Balance, error) {
	return r.list(ctx, itemID, true)
}

// ListByItem devuelve las filas del item ordenadas por created_at ascendente.
func (r *BalanceRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Balance, error) {
	return r.list(ctx, itemID, false)
}

func (r *BalanceRepo) list(ctx context.Context, itemID string, forUpdate bool) ([]*entity.Balance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM balances WHERE item_id = $1
		ORDER BY created_at`
	if forUpdate {
		query += `
		FOR UPDATE`
	}
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Balance
	for rows.Next() {
		var b entity.Balance
		if err := rows.Scan(
			&b.ID, &b.ItemID, &b.BatchNumber, &b.Quantity, &b.ProductionDate, &b.ExpiryDate,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// SumByItem devuelve el stock total actual del item (0 si no hay filas).
func (r *BalanceRepo) SumByItem(ctx context.Context, itemID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM balances WHERE item_id = $1`, itemID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum balances: %w", err)
	}
	return total, nil
}

// Insert crea una fila de balance nueva con los metadatos del lote.
func (r *BalanceRepo) Insert(ctx context.Context, balance *entity.Balance) error {
	query := `
		INSERT INTO balances (id, item_id, batch_number, quantity, production_date, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		balance.ID, balance.ItemID, balance.BatchNumber, balance.Quantity,
		balance.ProductionDate, balance.ExpiryDate, balance.CreatedAt, balance.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert balance: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de una fila. El caller garantiza quantity > 0;
// las filas que llegan a cero se eliminan con Delete, nunca se dejan en cero.
func (r *BalanceRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE balances SET quantity = $2, updated_at = now() WHERE id = $1`, id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	return nil
}

// Delete elimina una fila de balance agotada.
func (r *BalanceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM balances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete balance: %w", err)
	}
	return nil
}
