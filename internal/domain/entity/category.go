package entity

import "time"

// Category representa una categoría de materiales (jerárquica opcional).
// ParentID vacío si es raíz. El árbol se guarda plano; la validación de
// ciclos la hace el caso de uso al asignar el padre.
type Category struct {
	ID          string
	Name        string // único
	Description string
	ParentID    string
	CreatedAt   time.Time
}
