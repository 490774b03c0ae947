package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional (snapshot + restore en error)
// ─────────────────────────────────────────────────────────────────────────────

type memoryStore struct {
	items    map[string]*entity.Item
	balances []*entity.Balance // orden de creación
	txs      []*entity.StockTransaction

	failBalanceWrite bool // fuerza error de store en escrituras de balance
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string]*entity.Item{}}
}

func (s *memoryStore) addItem(id string, minStock, maxStock int64) {
	s.items[id] = &entity.Item{ID: id, Code: "C-" + id, Name: "Item " + id, MinStock: minStock, MaxStock: maxStock}
}

func (s *memoryStore) snapshot() *memoryStore {
	cp := &memoryStore{items: s.items, failBalanceWrite: s.failBalanceWrite}
	cp.balances = make([]*entity.Balance, len(s.balances))
	for i, b := range s.balances {
		c := *b
		cp.balances[i] = &c
	}
	cp.txs = append(cp.txs, s.txs...)
	return cp
}

func (s *memoryStore) restore(from *memoryStore) {
	s.balances = from.balances
	s.txs = from.txs
}

func (s *memoryStore) totalStock(itemID string) int64 {
	var total int64
	for _, b := range s.balances {
		if b.ItemID == itemID {
			total += b.Quantity
		}
	}
	return total
}

func (s *memoryStore) balance(itemID, batch string) *entity.Balance {
	for _, b := range s.balances {
		if b.ItemID == itemID && b.BatchNumber == batch {
			return b
		}
	}
	return nil
}

// Run copia el estado antes de fn y lo restaura si falla, imitando el
// rollback de la transacción real.
func (s *memoryStore) Run(ctx context.Context, fn func(
	txRepo repository.TransactionRepository,
	balanceRepo repository.BalanceRepository,
) error) error {
	before := s.snapshot()
	if err := fn(&memTxRepo{s: s}, &memBalanceRepo{s: s}); err != nil {
		s.restore(before)
		return err
	}
	return nil
}

type memTxRepo struct{ s *memoryStore }

func (r *memTxRepo) Create(_ context.Context, tx *entity.StockTransaction) error {
	c := *tx
	r.s.txs = append(r.s.txs, &c)
	return nil
}

func (r *memTxRepo) ListByKind(_ context.Context, kind string) ([]repository.TransactionRecord, error) {
	var out []repository.TransactionRecord
	for _, tx := range r.s.txs {
		if tx.Kind == kind {
			out = append(out, repository.TransactionRecord{StockTransaction: *tx})
		}
	}
	return out, nil
}

type memBalanceRepo struct{ s *memoryStore }

var errStore = errors.New("fallo de store simulado")

func (r *memBalanceRepo) GetForUpdate(_ context.Context, itemID, batch string) (*entity.Balance, error) {
	return r.s.balance(itemID, batch), nil
}

func (r *memBalanceRepo) ListByItemForUpdate(_ context.Context, itemID string) ([]*entity.Balance, error) {
	var out []*entity.Balance
	for _, b := range r.s.balances {
		if b.ItemID == itemID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBalanceRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Balance, error) {
	return r.ListByItemForUpdate(ctx, itemID)
}

func (r *memBalanceRepo) SumByItem(_ context.Context, itemID string) (int64, error) {
	return r.s.totalStock(itemID), nil
}

func (r *memBalanceRepo) Insert(_ context.Context, balance *entity.Balance) error {
	if r.s.failBalanceWrite {
		return errStore
	}
	c := *balance
	r.s.balances = append(r.s.balances, &c)
	return nil
}

func (r *memBalanceRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	if r.s.failBalanceWrite {
		return errStore
	}
	for _, b := range r.s.balances {
		if b.ID == id {
			b.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memBalanceRepo) Delete(_ context.Context, id string) error {
	if r.s.failBalanceWrite {
		return errStore
	}
	for i, b := range r.s.balances {
		if b.ID == id {
			r.s.balances = append(r.s.balances[:i], r.s.balances[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memItemRepo struct{ s *memoryStore }

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.s.items[item.ID] = item
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	return r.s.items[id], nil
}

func (r *memItemRepo) List(_ context.Context) ([]repository.ItemWithCategory, error) {
	return nil, nil
}

func (r *memItemRepo) Search(_ context.Context, _ repository.ItemFilter) ([]repository.ItemWithCategory, error) {
	return nil, nil
}

type countingResetter struct{ calls int }

func (c *countingResetter) Reset() { c.calls++ }

func newLedger(s *memoryStore) (*UseCase, *countingResetter) {
	alerts := &countingResetter{}
	uc := New(s, &memItemRepo{s: s}, alerts)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc, alerts
}

func price(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// ─────────────────────────────────────────────────────────────────────────────
// Receive
// ─────────────────────────────────────────────────────────────────────────────

func TestReceiveCreatesBalancePerBatch(t *testing.T) {
	s := newMemoryStore()
	s.addItem("X", 10, 100)
	uc, _ := newLedger(s)
	ctx := context.Background()

	require.NoError(t, uc.Receive(ctx, ReceiveInput{ItemID: "X", Quantity: 50, UnitPrice: price(2.0), OperatorID: "op"}))
	require.NoError(t, uc.Receive(ctx, ReceiveInput{ItemID: "X", Quantity: 30, UnitPrice: price(2.0), BatchNumber: "B1", OperatorID: "op"}))

	// Dos filas de balance: sin lote 50, lote B1 30; total 80.
	require.Equal(t, int64(80), s.totalStock("X"))
	require.Equal(t, int64(50), s.balance("X", "").Quantity)
	require.Equal(t, int64(30), s.balance("X", "B1").Quantity)

	require.Len(t, s.txs, 2)
	require.True(t, s.txs[0].TotalAmount.Equal(price(100.0)))
}

func TestReceiveAccumulatesSameBatch(t *testing.T) {
	s := newMemoryStore()
	s.addItem("X", 0, 1000)
	uc, _ := newLedger(s)
	ctx := context.Background()

	require.NoError(t, uc.Receive(ctx, ReceiveInput{ItemID: "X", Quantity: 20, UnitPrice: price(1), BatchNumber: "B1", OperatorID: "op"}))
	require.NoError(t, uc.Receive(ctx, ReceiveInput{ItemID: "X", Quantity: 15, UnitPrice: price(1), BatchNumber: "B1", OperatorID: "op"}))

	require.Equal(t, int64(35), s.balance("X", "B1").Quantity)
	require.Len(t, s.balances, 1)
}

func TestReceiveValidation(t *testing.T) {
	s := newMemoryStore()
	s.addItem("X", 0, 100)
	uc, _ := newLedger(s)
	ctx := context.Background()

	require.ErrorIs(t, uc.Receive(ctx, ReceiveInput{ItemID: "X", Quantity: 0, UnitPrice: price(1)}), domain.ErrInvalidInput)
	require.ErrorIs(t, uc.Receive(ctx, ReceiveInput{ItemID: "X", Quantity: 5, UnitPrice: price(-1)}), domain.ErrInvalidInput)
	require.ErrorIs(t, uc.Receive(ctx, ReceiveInput{ItemID: "no-existe", Quantity: 5, UnitPrice: price(1)}), domain.ErrNotFound)
	require.Empty(t, s.txs)
}

func TestReceiveRollsBackOnStoreError(t *testing.T) {
	s := newMemoryStore()
	s.addItem("X", 0, 100)
	uc, alerts := newLedger(s)
	s.failBalanceWrite = true

	err := uc.Receive(context.Background(), ReceiveInput{ItemID: "X", Quantity: 5, UnitPrice: price(1), OperatorID: "op"})
	require.ErrorIs(t, err, errStore)

	// Sin efecto parcial observable: ni transacción ni balance.
	require.Empty(t, s.txs)
	require.Empty(t, s.balances)
	require.Zero(t, alerts.calls)
}

// ─────────────────────────────────────────────────────────────────────────────
// Issue
// ─────────────────────────────────────────────────────────────────────────────

func seedScenarioB(t *testing.T) (*memoryStore, *UseCase, *countingResetter) {
	t.Helper()
	s := newMemoryStore()
	s.addItem("X", 10, 100)
	uc, alerts := newLedger(s)
	ctx := context.Background()
	require.NoError(t, uc.Receive(ctx, ReceiveInput{ItemID: "X", Quantity: 50, UnitPrice: price(2.0), OperatorID: "op"}))
	require.NoError(t, uc.Receive(ctx, ReceiveInput{ItemID: "X", Quantity: 30, UnitPrice: price(2.0), BatchNumber: "B1", OperatorID: "op"}))
	return s, uc, alerts
}

func TestIssueInsufficientStockHasNoSideEffects(t *testing.T) {
	s, uc, _ := seedScenarioB(t)

	err := uc.Issue(context.Background(), IssueInput{ItemID: "X", Quantity: 90, UnitPrice: price(3), OperatorID: "op"})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Ni transacción registrada ni balances tocados.
	require.Len(t, s.txs, 2)
	require.Equal(t, int64(80), s.totalStock("X"))
	require.Equal(t, int64(50), s.balance("X", "").Quantity)
	require.Equal(t, int64(30), s.balance("X", "B1").Quantity)
}

func TestIssueDrainsOldestRowFirst(t *testing.T) {
	s, uc, _ := seedScenarioB(t)

	require.NoError(t, uc.Issue(context.Background(), IssueInput{ItemID: "X", Quantity: 50, UnitPrice: price(3), OperatorID: "op"}))

	// La fila sin lote (más antigua) se agota y se elimina; B1 queda intacta.
	require.Nil(t, s.balance("X", ""))
	require.Equal(t, int64(30), s.balance("X", "B1").Quantity)
	require.Equal(t, int64(30), s.totalStock("X"))
}

func TestIssueAcrossBatches(t *testing.T) {
	s, uc, _ := seedScenarioB(t)

	require.NoError(t, uc.Issue(context.Background(), IssueInput{ItemID: "X", Quantity: 60, UnitPrice: price(3), OperatorID: "op"}))

	require.Nil(t, s.balance("X", ""))
	require.Equal(t, int64(20), s.balance("X", "B1").Quantity)
}

func TestIssueExactStockLeavesNoRows(t *testing.T) {
	s, uc, _ := seedScenarioB(t)

	require.NoError(t, uc.Issue(context.Background(), IssueInput{ItemID: "X", Quantity: 80, UnitPrice: price(3), OperatorID: "op"}))

	// Las filas en cero se eliminan, no se conservan.
	require.Empty(t, s.balances)
	require.Equal(t, int64(0), s.totalStock("X"))
}

func TestIssueRollsBackOnStoreError(t *testing.T) {
	s, uc, _ := seedScenarioB(t)
	s.failBalanceWrite = true

	err := uc.Issue(context.Background(), IssueInput{ItemID: "X", Quantity: 10, UnitPrice: price(3), OperatorID: "op"})
	require.ErrorIs(t, err, errStore)

	require.Len(t, s.txs, 2)
	require.Equal(t, int64(80), s.totalStock("X"))
}

func TestMutationsResetAlertState(t *testing.T) {
	_, uc, alerts := seedScenarioB(t)
	require.Equal(t, 2, alerts.calls) // dos Receive del seed

	require.NoError(t, uc.Issue(context.Background(), IssueInput{ItemID: "X", Quantity: 10, UnitPrice: price(3), OperatorID: "op"}))
	require.Equal(t, 3, alerts.calls)

	// Un fallo no resetea.
	err := uc.Issue(context.Background(), IssueInput{ItemID: "X", Quantity: 999, UnitPrice: price(3), OperatorID: "op"})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Equal(t, 3, alerts.calls)
}

// Ley de reconciliación: sum(balances) == sum(entradas) - sum(salidas)
// después de cualquier secuencia de operaciones.
func TestLedgerSumMatchesBalances(t *testing.T) {
	s := newMemoryStore()
	s.addItem("X", 0, 10000)
	s.addItem("Y", 0, 10000)
	uc, _ := newLedger(s)
	ctx := context.Background()

	ops := []struct {
		item  string
		kind  string
		qty   int64
		batch string
	}{
		{"X", "receipt", 100, ""},
		{"X", "receipt", 40, "L1"},
		{"Y", "receipt", 25, ""},
		{"X", "issue", 110, ""},
		{"X", "receipt", 5, "L2"},
		{"Y", "issue", 25, ""},
		{"X", "issue", 30, ""},
	}

	expected := map[string]int64{}
	for _, op := range ops {
		if op.kind == "receipt" {
			require.NoError(t, uc.Receive(ctx, ReceiveInput{ItemID: op.item, Quantity: op.qty, UnitPrice: price(1), BatchNumber: op.batch, OperatorID: "op"}))
			expected[op.item] += op.qty
		} else {
			require.NoError(t, uc.Issue(ctx, IssueInput{ItemID: op.item, Quantity: op.qty, UnitPrice: price(1), OperatorID: "op"}))
			expected[op.item] -= op.qty
		}
	}

	for item, want := range expected {
		require.Equal(t, want, s.totalStock(item), "reconciliación de %s", item)
	}
	// Ninguna fila persistida queda con cantidad <= 0.
	for _, b := range s.balances {
		require.Positive(t, b.Quantity)
	}
}
