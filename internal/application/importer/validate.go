package importer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RowError un problema de validación asociado a una fila. Row es el número de
// línea del archivo original (el encabezado cuenta como línea 1, así que la
// primera fila de datos se reporta como 2). Row 0 señala un error de mapeo que
// bloquea la importación completa.
type RowError struct {
	Row     int
	Message string
}

// String presenta el error con el prefijo de fila usado en el dashboard.
func (e RowError) String() string {
	if e.Row == 0 {
		return e.Message
	}
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}

// Result resultado particionado de una validación: filas aceptadas frente a
// errores por fila. Invariante: SuccessfulImports + FailedImports == TotalRows
// y ninguna fila de Data tiene entrada en Errors.
type Result struct {
	TotalRows         int
	SuccessfulImports int
	FailedImports     int
	Data              []map[string]any
	Errors            []RowError
}

// Validate aplica las reglas por fila sobre los valores crudos del CSV según
// el mapeo encabezado → campo confirmado por el usuario:
//
//   - campo obligatorio vacío → "<campo> is required", fila excluida;
//   - campo numérico que no es número no negativo → "<campo> must be a valid
//     positive number", fila excluida (cero es válido: coincide con el
//     comportamiento observado del sistema original);
//   - una fila entra en Data solo si no produjo ningún error.
//
// Si ningún encabezado mapea a algún campo obligatorio, se reporta una única
// vez como error de mapeo (Row 0) y se bloquea la importación completa: no se
// acepta ninguna fila. Validar dos veces la misma entrada produce el mismo
// resultado; no muta las filas recibidas.
func Validate(rows []map[string]string, mapping map[string]string, requiredKeys []string) Result {
	result := Result{TotalRows: len(rows)}

	if missing := missingRequired(mapping, requiredKeys); len(missing) > 0 {
		result.Errors = append(result.Errors, RowError{
			Row:     0,
			Message: "Missing required columns: " + strings.Join(missing, ", "),
		})
		result.FailedImports = result.TotalRows
		return result
	}

	for i, row := range rows {
		lineNumber := i + 2 // +1 por el encabezado, +1 por la base cero
		mapped, errs := validateRow(row, mapping, requiredKeys, lineNumber)
		if len(errs) > 0 {
			result.Errors = append(result.Errors, errs...)
			continue
		}
		result.Data = append(result.Data, mapped)
	}

	result.SuccessfulImports = len(result.Data)
	result.FailedImports = result.TotalRows - result.SuccessfulImports
	return result
}

func validateRow(row map[string]string, mapping map[string]string, requiredKeys []string, line int) (map[string]any, []RowError) {
	mapped := make(map[string]any)
	var errs []RowError

	for _, header := range sortedHeaders(mapping) {
		field := mapping[header]
		if field == "" {
			continue
		}
		value := strings.TrimSpace(row[header])

		if isRequired(field, requiredKeys) && value == "" {
			errs = append(errs, RowError{Row: line, Message: field + " is required"})
			continue
		}
		if isNumericField(field) && value != "" {
			n, err := strconv.ParseFloat(value, 64)
			if err != nil || n < 0 {
				errs = append(errs, RowError{Row: line, Message: field + " must be a valid positive number"})
				continue
			}
			mapped[field] = n
			continue
		}
		mapped[field] = value
	}
	return mapped, errs
}

// missingRequired devuelve las claves obligatorias a las que ningún encabezado
// mapea, en el orden de requiredKeys.
func missingRequired(mapping map[string]string, requiredKeys []string) []string {
	mappedFields := make(map[string]bool, len(mapping))
	for _, field := range mapping {
		mappedFields[field] = true
	}
	var missing []string
	for _, key := range requiredKeys {
		if !mappedFields[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

func isRequired(field string, requiredKeys []string) bool {
	for _, k := range requiredKeys {
		if k == field {
			return true
		}
	}
	return false
}

func isNumericField(field string) bool {
	for _, k := range NumericFieldKeys {
		if k == field {
			return true
		}
	}
	return false
}

// sortedHeaders itera el mapeo en orden determinista para que los errores de
// una misma fila salgan siempre igual.
func sortedHeaders(mapping map[string]string) []string {
	headers := make([]string, 0, len(mapping))
	for h := range mapping {
		headers = append(headers, h)
	}
	sort.Strings(headers)
	return headers
}
