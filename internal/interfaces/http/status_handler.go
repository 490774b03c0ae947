package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/status"
)

// StatusHandler maneja las peticiones HTTP del evaluador de estado.
type StatusHandler struct {
	uc *status.UseCase
}

// NewStatusHandler construye el handler.
func NewStatusHandler(uc *status.UseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// Search devuelve el estado de stock de los items que pasan los filtros:
// keyword (substring sobre código o nombre), category y status
// (insufficient, normal, excess). "all" o vacío desactiva cada filtro.
func (h *StatusHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	category := c.Query("category", dto.FilterAll)
	statusFilter := c.Query("status", dto.FilterAll)

	out, err := h.uc.Search(c.Context(), keyword, category, statusFilter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
