package inventory

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// BalanceStep es un paso del plan de descarga: cuánto tomar de cada fila de
// balance y si la fila debe eliminarse (queda en cero) o actualizarse.
type BalanceStep struct {
	BalanceID   string
	Take        int64
	NewQuantity int64
	Delete      bool
}

// TotalStock suma las cantidades de todas las filas de balance de un item.
func TotalStock(rows []*entity.Balance) int64 {
	var total int64
	for _, r := range rows {
		total += r.Quantity
	}
	return total
}

// PlanFIFO reparte una salida de qty unidades entre las filas de balance en
// orden de creación (la más antigua primero), agotando cada fila antes de
// pasar a la siguiente. Las filas que quedan en cero se marcan para eliminar.
// Las filas deben venir ya ordenadas por created_at ascendente.
// Devuelve ok=false si el stock total es menor que qty; en ese caso no debe
// aplicarse ningún paso.
func PlanFIFO(rows []*entity.Balance, qty int64) (steps []BalanceStep, ok bool) {
	if qty <= 0 || TotalStock(rows) < qty {
		return nil, false
	}
	remaining := qty
	for _, r := range rows {
		if remaining == 0 {
			break
		}
		take := r.Quantity
		if take > remaining {
			take = remaining
		}
		newQty := r.Quantity - take
		steps = append(steps, BalanceStep{
			BalanceID:   r.ID,
			Take:        take,
			NewQuantity: newQty,
			Delete:      newQty <= 0,
		})
		remaining -= take
	}
	return steps, true
}
