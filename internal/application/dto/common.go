package dto

// ErrorResponse cuerpo de error uniforme de la API: título corto + mensaje largo.
type ErrorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// PaginatedResponse envoltorio de listados paginados.
type PaginatedResponse[T any] struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
	Items      []T `json:"items"`
}

// NewPaginatedResponse calcula los metadatos de paginación a partir del total.
func NewPaginatedResponse[T any](page, pageSize, totalCount int, items []T) PaginatedResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
		Items:      items,
	}
}
