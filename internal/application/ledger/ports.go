package ledger

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor del
// ledger: o se persisten la transacción y los balances, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		balanceRepo repository.BalanceRepository,
	) error) error
}

// AlertResetter devuelve la máquina de alertas al estado quiet. El motor lo
// invoca tras cada mutación exitosa para que el siguiente chequeo automático
// vuelva a notificar si las condiciones persisten.
type AlertResetter interface {
	Reset()
}
