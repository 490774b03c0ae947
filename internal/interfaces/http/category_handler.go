package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	uc *catalog.UseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *catalog.UseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create registra una categoría nueva. El nombre es único; parent_id vacío
// crea una categoría raíz.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.AddCategory(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve todas las categorías con el nombre del padre resuelto.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
