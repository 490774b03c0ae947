package dto

// Sentinel de filtros de búsqueda: desactiva el filtro de categoría,
// proveedor o estado en las consultas que lo aceptan.
const FilterAll = "all"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
