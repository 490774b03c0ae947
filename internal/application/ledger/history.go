package ledger

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// HistoryUseCase lista el historial del ledger. Solo lectura, fuera de
// transacción.
type HistoryUseCase struct {
	txRepo repository.TransactionRepository
}

// NewHistory construye el caso de uso de historial.
func NewHistory(txRepo repository.TransactionRepository) *HistoryUseCase {
	return &HistoryUseCase{txRepo: txRepo}
}

// ListReceipts devuelve las entradas ordenadas por fecha descendente, con
// nombre de item, unidad y nombre completo del operador resueltos.
func (uc *HistoryUseCase) ListReceipts(ctx context.Context) ([]dto.TransactionResponse, error) {
	return uc.list(ctx, entity.TransactionKindReceipt)
}

// ListIssues devuelve las salidas ordenadas por fecha descendente.
func (uc *HistoryUseCase) ListIssues(ctx context.Context) ([]dto.TransactionResponse, error) {
	return uc.list(ctx, entity.TransactionKindIssue)
}

func (uc *HistoryUseCase) list(ctx context.Context, kind string) ([]dto.TransactionResponse, error) {
	rows, err := uc.txRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(rows))
	for _, row := range rows {
		counterparty := row.Supplier
		if row.Kind == entity.TransactionKindIssue {
			counterparty = row.Recipient
		}
		out = append(out, dto.TransactionResponse{
			ID:           row.StockTransaction.ID,
			Kind:         row.Kind,
			ItemName:     row.ItemName,
			Unit:         row.Unit,
			Quantity:     row.Quantity,
			UnitPrice:    row.UnitPrice,
			TotalAmount:  row.TotalAmount,
			Counterparty: counterparty,
			Purpose:      row.Purpose,
			BatchNumber:  row.BatchNumber,
			OperatorName: row.OperatorName,
			OccurredAt:   row.OccurredAt,
			Notes:        row.Notes,
		})
	}
	return out, nil
}
