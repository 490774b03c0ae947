package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/status"
)

// StockHandler maneja las peticiones HTTP del ledger: entradas, salidas,
// stock actual e historial.
type StockHandler struct {
	ledgerUC  *ledger.UseCase
	historyUC *ledger.HistoryUseCase
	statusUC  *status.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledgerUC *ledger.UseCase, historyUC *ledger.HistoryUseCase, statusUC *status.UseCase) *StockHandler {
	return &StockHandler{ledgerUC: ledgerUC, historyUC: historyUC, statusUC: statusUC}
}

// Receive registra una entrada de stock.
func (h *StockHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	err := h.ledgerUC.Receive(c.Context(), ledger.ReceiveInput{
		ItemID:         in.ItemID,
		Quantity:       in.Quantity,
		UnitPrice:      in.UnitPrice,
		Supplier:       in.Supplier,
		BatchNumber:    in.BatchNumber,
		ProductionDate: in.ProductionDate,
		ExpiryDate:     in.ExpiryDate,
		OperatorID:     in.OperatorID,
		Notes:          in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "entrada registrada"})
}

// Issue registra una salida de stock. Si el stock total del item no alcanza,
// responde 409 sin efecto alguno sobre el ledger ni los balances.
func (h *StockHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	err := h.ledgerUC.Issue(c.Context(), ledger.IssueInput{
		ItemID:     in.ItemID,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		Recipient:  in.Recipient,
		Purpose:    in.Purpose,
		OperatorID: in.OperatorID,
		Notes:      in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "salida registrada"})
}

// CurrentStock devuelve el stock total actual de un item (0 si no tiene
// filas de balance).
func (h *StockHandler) CurrentStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	total, err := h.statusUC.CurrentStock(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"item_id": id, "current_stock": total})
}

// ListReceipts devuelve el historial de entradas, más reciente primero.
func (h *StockHandler) ListReceipts(c *fiber.Ctx) error {
	out, err := h.historyUC.ListReceipts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListIssues devuelve el historial de salidas, más reciente primero.
func (h *StockHandler) ListIssues(c *fiber.Ctx) error {
	out, err := h.historyUC.ListIssues(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
