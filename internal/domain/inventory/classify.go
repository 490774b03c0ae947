// Package inventory contiene los servicios de dominio puros del núcleo de
// inventario: clasificación de stock frente a umbrales y el plan de descarga
// FIFO sobre filas de balance.
package inventory

// Clasificaciones de stock frente a los umbrales del item.
const (
	StatusInsufficient = "insufficient"
	StatusNormal       = "normal"
	StatusExcess       = "excess"
)

// Classify compara el stock actual contra los umbrales configurados.
// La comprobación de insuficiente se evalúa estrictamente antes que la de
// exceso: con min == max == stock gana la primera rama y el resultado es
// insufficient. Este orden de precedencia debe conservarse.
func Classify(currentStock, minStock, maxStock int64) string {
	if currentStock <= minStock {
		return StatusInsufficient
	}
	if currentStock >= maxStock {
		return StatusExcess
	}
	return StatusNormal
}
