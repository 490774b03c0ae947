package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del ledger.
const (
	TransactionKindReceipt = "receipt" // entrada
	TransactionKindIssue   = "issue"   // salida
)

// StockTransaction representa un asiento del ledger de inventario (entrada o
// salida). Variante etiquetada por Kind: los campos de lote/fechas aplican solo
// a entradas, Recipient/Purpose solo a salidas. Inmutable una vez creada;
// el ledger es append-only y los balances son un derivado de él.
type StockTransaction struct {
	ID          string
	Kind        string
	ItemID      string
	Quantity    int64           // siempre > 0; el signo lo da Kind
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal // Quantity * UnitPrice

	// Solo receipt
	Supplier       string
	BatchNumber    string
	ProductionDate *time.Time
	ExpiryDate     *time.Time

	// Solo issue
	Recipient string
	Purpose   string

	OperatorID string
	OccurredAt time.Time
	Notes      string
}

// IsReceipt indica si la transacción es una entrada.
func (t *StockTransaction) IsReceipt() bool { return t.Kind == TransactionKindReceipt }

// SignedQuantity devuelve la cantidad con signo según el tipo (+entrada, -salida).
func (t *StockTransaction) SignedQuantity() int64 {
	if t.Kind == TransactionKindIssue {
		return -t.Quantity
	}
	return t.Quantity
}
