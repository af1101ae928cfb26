// Package exporter arma el artefacto CSV descargable: filtros por fila,
// selección de columnas, formateo por columna y serialización vía csvkit.
package exporter

import (
	"fmt"
	"time"

	"github.com/jhoicas/InventoryPro-api/pkg/csvkit"
	"github.com/jhoicas/InventoryPro-api/pkg/tabular"
)

// Config configuración transitoria de una exportación. Los defaults se
// derivan del esquema recibido y de las preferencias CSV guardadas.
type Config struct {
	Basename        string
	IncludeHeaders  bool
	Delimiter       string
	DateFormat      csvkit.DateFormat
	SelectedColumns []string
	Filters         map[string]string
	ExtraDateKeys   []string // claves tratadas como fecha además de la heurística por nombre
}

// Artifact resultado de la exportación: el contenido CSV más los metadatos
// que el colaborador usa para disparar la descarga.
type Artifact struct {
	Filename    string
	MIMEType    string
	Content     string
	RowCount    int
	ColumnCount int
}

// Export aplica filtros, selecciona columnas, formatea los valores y codifica
// el CSV. No muta la colección de entrada; una lectura concurrente de la
// fuente durante el formateo es segura. El nombre del archivo sigue la forma
// <basename>_<fecha-ISO>.csv.
func Export(rows []tabular.Row, schema tabular.Schema, cfg Config) Artifact {
	filtered := tabular.Filter(rows, cfg.Filters)
	columns := schema.Select(cfg.SelectedColumns)

	out := make([]map[string]any, 0, len(filtered))
	for _, row := range filtered {
		formatted := make(map[string]any, len(columns))
		for _, col := range columns {
			formatted[col.Label] = FormatValue(row[col.Key], col, row, cfg)
		}
		out = append(out, formatted)
	}

	content := csvkit.Encode(columns.Labels(), out, csvkit.EncodeOptions{
		IncludeHeaders: cfg.IncludeHeaders,
		Delimiter:      cfg.Delimiter,
	})

	basename := cfg.Basename
	if basename == "" {
		basename = "export"
	}
	return Artifact{
		Filename:    fmt.Sprintf("%s_%s.csv", basename, time.Now().Format("2006-01-02")),
		MIMEType:    "text/csv",
		Content:     content,
		RowCount:    len(filtered),
		ColumnCount: len(columns),
	}
}

// FormatValue formatea una celda: delega en el formateador propio de la
// columna cuando existe; si no, aplica la heurística de fechas por nombre de
// clave y en último término la representación por defecto del valor.
func FormatValue(value any, col tabular.Column, row tabular.Row, cfg Config) string {
	if col.Format != nil {
		return col.Format(value, row)
	}
	s := csvkit.Stringify(value)
	if csvkit.IsDateKey(col.Key, cfg.ExtraDateKeys...) {
		return csvkit.FormatDate(s, cfg.DateFormat)
	}
	return s
}
