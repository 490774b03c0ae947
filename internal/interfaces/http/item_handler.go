package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// ItemHandler maneja las peticiones HTTP de la ficha de materiales.
type ItemHandler struct {
	uc *catalog.UseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *catalog.UseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create registra un item nuevo. El código es único en todo el almacén.
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.AddItem(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve todos los items con la categoría resuelta.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search filtra items por palabra clave (substring sobre código o nombre,
// sensible a mayúsculas), categoría y proveedor. "all" o vacío desactiva el
// filtro correspondiente; los filtros activos se componen con AND.
func (h *ItemHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	category := c.Query("category", dto.FilterAll)
	supplier := c.Query("supplier", dto.FilterAll)

	out, err := h.uc.SearchItems(c.Context(), keyword, category, supplier)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
