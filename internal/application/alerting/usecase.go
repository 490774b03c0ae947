// Package alerting agrega el estado del evaluador en conteos y una
// notificación bajo demanda, con una máquina de dos estados (quiet/notified)
// que evita repetir la misma alerta en chequeos automáticos consecutivos.
package alerting

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
)

// topN items destacados por clase en el payload de notificación.
const topN = 5

// StatusReader puerto de lectura hacia el evaluador de estado.
type StatusReader interface {
	ListStatus(ctx context.Context) ([]dto.StockStatusResponse, error)
}

// Estados de la máquina de notificación.
const (
	stateQuiet    = "quiet"
	stateNotified = "notified"
)

// UseCase sumariza alertas de stock. El estado quiet/notified es en memoria:
// se pierde al reiniciar el proceso, lo que solo provoca una notificación de
// más en el siguiente chequeo.
type UseCase struct {
	statuses StatusReader
	now      func() time.Time

	mu    sync.Mutex
	state string
}

// New construye el sumarizador en estado quiet.
func New(statuses StatusReader) *UseCase {
	return &UseCase{statuses: statuses, now: time.Now, state: stateQuiet}
}

// Summarize cuenta los items en insuficiencia y en exceso. Agregado puro
// sobre el evaluador; no toca la máquina de estados.
func (uc *UseCase) Summarize(ctx context.Context) (insufficient, excess int, err error) {
	rows, err := uc.statuses.ListStatus(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, row := range rows {
		switch row.Status {
		case inventory.StatusInsufficient:
			insufficient++
		case inventory.StatusExcess:
			excess++
		}
	}
	return insufficient, excess, nil
}

// CheckAndNotify recalcula los conteos y produce un payload de notificación
// cuando hay algo que alertar y (el estado es quiet o el chequeo es manual),
// pasando a notified. Devuelve nil si no corresponde notificar. Con conteos
// en cero el estado no cambia: no hay reset automático, solo las mutaciones
// del ledger rearman la máquina.
func (uc *UseCase) CheckAndNotify(ctx context.Context, manual bool) (*dto.NotificationResponse, error) {
	rows, err := uc.statuses.ListStatus(ctx)
	if err != nil {
		return nil, err
	}

	var insufficient, excess []dto.AlertItem
	for _, row := range rows {
		it := dto.AlertItem{
			ItemCode:     row.ItemCode,
			ItemName:     row.ItemName,
			CurrentStock: row.CurrentStock,
			MinStock:     row.MinStock,
			MaxStock:     row.MaxStock,
		}
		switch row.Status {
		case inventory.StatusInsufficient:
			insufficient = append(insufficient, it)
		case inventory.StatusExcess:
			excess = append(excess, it)
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(insufficient) == 0 && len(excess) == 0 {
		return nil, nil
	}
	if uc.state == stateNotified && !manual {
		return nil, nil
	}

	uc.state = stateNotified
	return &dto.NotificationResponse{
		InsufficientCount: len(insufficient),
		ExcessCount:       len(excess),
		TopInsufficient:   top(insufficient),
		MoreInsufficient:  remainder(insufficient),
		TopExcess:         top(excess),
		MoreExcess:        remainder(excess),
		GeneratedAt:       uc.now(),
	}, nil
}

// Reset vuelve la máquina a quiet. El motor del ledger lo invoca tras cada
// mutación exitosa para que el siguiente chequeo automático vuelva a
// notificar si las condiciones persisten.
func (uc *UseCase) Reset() {
	uc.mu.Lock()
	uc.state = stateQuiet
	uc.mu.Unlock()
}

func top(items []dto.AlertItem) []dto.AlertItem {
	if len(items) <= topN {
		return items
	}
	return items[:topN]
}

func remainder(items []dto.AlertItem) int {
	if len(items) <= topN {
		return 0
	}
	return len(items) - topN
}
