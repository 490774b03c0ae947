package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/alerting"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// AlertHandler maneja las peticiones HTTP del resumen de alertas.
type AlertHandler struct {
	uc *alerting.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerting.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// Summary devuelve los conteos de items con stock insuficiente y excedente.
// No toca el estado de notificación.
func (h *AlertHandler) Summary(c *fiber.Ctx) error {
	insufficient, excess, err := h.uc.Summarize(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.AlertSummaryResponse{Insufficient: insufficient, Excess: excess})
}

// Check evalúa el estado y devuelve la notificación si corresponde emitirla.
// Con ?manual=true siempre emite aunque ya se haya notificado; sin ella solo
// emite la primera vez desde el último movimiento de stock. Responde 204
// cuando no hay nada que notificar.
func (h *AlertHandler) Check(c *fiber.Ctx) error {
	manual := c.QueryBool("manual", false)
	out, err := h.uc.CheckAndNotify(c.Context(), manual)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(out)
}
