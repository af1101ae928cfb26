package dto

// ImportSessionResponse estado de una sesión de importación: encabezados
// detectados, mapeo vigente y una muestra de filas para previsualizar.
type ImportSessionResponse struct {
	SessionID string              `json:"session_id"`
	FileName  string              `json:"file_name"`
	Headers   []string            `json:"headers"`
	Mapping   map[string]string   `json:"mapping"`
	RowCount  int                 `json:"row_count"`
	Preview   []map[string]string `json:"preview"`
}

// UpdateMappingRequest mapeo encabezado → campo confirmado por el usuario.
// Cadena vacía desasigna el encabezado.
type UpdateMappingRequest struct {
	Mapping map[string]string `json:"mapping" validate:"required"`
}

// ImportResultResponse resultado particionado de la importación.
type ImportResultResponse struct {
	TotalRows         int      `json:"total_rows"`
	SuccessfulImports int      `json:"successful_imports"`
	FailedImports     int      `json:"failed_imports"`
	Errors            []string `json:"errors,omitempty"`
}
