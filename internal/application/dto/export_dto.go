package dto

// ExportQuery parámetros de una exportación CSV. Los campos vacíos caen en
// los defaults derivados del esquema y de las preferencias CSV guardadas.
type ExportQuery struct {
	Delimiter      string   `query:"delimiter"`
	DateFormat     string   `query:"date_format"`
	IncludeHeaders *bool    `query:"include_headers"`
	Columns        []string `query:"columns"`
	Category       string   `query:"category"`
	Warehouse      string   `query:"warehouse"`
	Status         string   `query:"status"`
}

// ExportMetadata metadatos del artefacto exportado, devueltos al colaborador
// que dispara la descarga.
type ExportMetadata struct {
	Filename    string `json:"filename"`
	RowCount    int    `json:"row_count"`
	ColumnCount int    `json:"column_count"`
}
