// Package ledger implementa el motor de inventario: aplica entradas y salidas
// al ledger append-only y mantiene los balances materializados por
// (item, lote) dentro de una misma transacción de BD.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase registra entradas (Receive) y salidas (Issue) de forma transaccional.
// Es el único escritor de transacciones y balances.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	alerts   AlertResetter
	now      func() time.Time
}

// New construye el motor del ledger. alerts puede ser nil si no hay
// sumarizador de alertas conectado.
func New(txRunner TxRunner, itemRepo repository.ItemRepository, alerts AlertResetter) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		itemRepo: itemRepo,
		alerts:   alerts,
		now:      time.Now,
	}
}

// ReceiveInput entrada para registrar una recepción.
type ReceiveInput struct {
	ItemID         string
	Quantity       int64
	UnitPrice      decimal.Decimal
	Supplier       string
	BatchNumber    string
	ProductionDate *time.Time
	ExpiryDate     *time.Time
	OperatorID     string
	Notes          string
}

// IssueInput entrada para registrar una salida.
type IssueInput struct {
	ItemID     string
	Quantity   int64
	UnitPrice  decimal.Decimal
	Recipient  string
	Purpose    string
	OperatorID string
	Notes      string
}

// Receive registra la entrada: inserta la transacción receipt y aplica el
// delta positivo al balance del (item, lote) en la misma transacción de BD.
// BatchNumber vacío acumula sobre la fila sin lote, que es una clave distinta
// de cualquier lote nombrado.
func (uc *UseCase) Receive(ctx context.Context, input ReceiveInput) error {
	if input.Quantity <= 0 || input.UnitPrice.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	now := uc.now()
	qty := decimal.NewFromInt(input.Quantity)
	tx := &entity.StockTransaction{
		ID:             uuid.New().String(),
		Kind:           entity.TransactionKindReceipt,
		ItemID:         input.ItemID,
		Quantity:       input.Quantity,
		UnitPrice:      input.UnitPrice,
		TotalAmount:    qty.Mul(input.UnitPrice),
		Supplier:       input.Supplier,
		BatchNumber:    input.BatchNumber,
		ProductionDate: input.ProductionDate,
		ExpiryDate:     input.ExpiryDate,
		OperatorID:     input.OperatorID,
		OccurredAt:     now,
		Notes:          input.Notes,
	}

	err = uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		balanceRepo repository.BalanceRepository,
	) error {
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		return applyReceiptDelta(ctx, balanceRepo, input, now)
	})
	if err != nil {
		return err
	}
	uc.resetAlerts()
	return nil
}

// applyReceiptDelta localiza la fila de balance (item, lote) bloqueándola.
// Si existe suma la cantidad; si no, inserta una fila nueva con los metadatos
// del lote.
func applyReceiptDelta(ctx context.Context, balanceRepo repository.BalanceRepository, input ReceiveInput, now time.Time) error {
	bal, err := balanceRepo.GetForUpdate(ctx, input.ItemID, input.BatchNumber)
	if err != nil {
		return err
	}
	if bal == nil {
		return balanceRepo.Insert(ctx, &entity.Balance{
			ID:             uuid.New().String(),
			ItemID:         input.ItemID,
			BatchNumber:    input.BatchNumber,
			Quantity:       input.Quantity,
			ProductionDate: input.ProductionDate,
			ExpiryDate:     input.ExpiryDate,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return balanceRepo.UpdateQuantity(ctx, bal.ID, bal.Quantity+input.Quantity)
}

// Issue registra la salida. Dentro de la transacción de BD bloquea todas las
// filas de balance del item, verifica que el stock total alcance y descarga
// FIFO por orden de creación (la fila más antigua primero), eliminando las
// filas que quedan en cero. Si el stock no alcanza devuelve
// domain.ErrInsufficientStock sin ningún efecto: ni transacción ni balances.
func (uc *UseCase) Issue(ctx context.Context, input IssueInput) error {
	if input.Quantity <= 0 || input.UnitPrice.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	now := uc.now()
	qty := decimal.NewFromInt(input.Quantity)
	tx := &entity.StockTransaction{
		ID:          uuid.New().String(),
		Kind:        entity.TransactionKindIssue,
		ItemID:      input.ItemID,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		TotalAmount: qty.Mul(input.UnitPrice),
		Recipient:   input.Recipient,
		Purpose:     input.Purpose,
		OperatorID:  input.OperatorID,
		OccurredAt:  now,
		Notes:       input.Notes,
	}

	err = uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		balanceRepo repository.BalanceRepository,
	) error {
		rows, err := balanceRepo.ListByItemForUpdate(ctx, input.ItemID)
		if err != nil {
			return err
		}
		steps, ok := inventory.PlanFIFO(rows, input.Quantity)
		if !ok {
			return domain.ErrInsufficientStock
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		for _, step := range steps {
			if step.Delete {
				if err := balanceRepo.Delete(ctx, step.BalanceID); err != nil {
					return err
				}
				continue
			}
			if err := balanceRepo.UpdateQuantity(ctx, step.BalanceID, step.NewQuantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.resetAlerts()
	return nil
}

func (uc *UseCase) resetAlerts() {
	if uc.alerts != nil {
		uc.alerts.Reset()
	}
}
