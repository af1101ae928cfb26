package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListQuery parámetros de consulta de una grilla: búsqueda, filtros discretos
// y ordenamiento. Se aplica en el orden búsqueda → filtros → orden.
type ListQuery struct {
	Search        string `query:"search"`
	Category      string `query:"category"`
	Warehouse     string `query:"warehouse"`
	Status        string `query:"status"`
	SortBy        string `query:"sort_by"`
	SortDirection string `query:"sort_dir" validate:"omitempty,oneof=asc desc"`
}
