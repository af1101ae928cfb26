// Package csvkit implementa el códec CSV compartido por importación y
// exportación: decodificación con comillas escapadas, codificación con
// delimitador configurable y formateo de fechas.
package csvkit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrFormat indica un CSV malformado o demasiado corto (sin filas de datos).
var ErrFormat = errors.New("csv: formato inválido")

// Delimitadores soportados por el códec.
const (
	DelimiterComma     = ","
	DelimiterSemicolon = ";"
	DelimiterTab       = "\t"
	DelimiterPipe      = "|"
)

// ValidDelimiter indica si el delimitador está dentro del conjunto soportado.
func ValidDelimiter(d string) bool {
	switch d {
	case DelimiterComma, DelimiterSemicolon, DelimiterTab, DelimiterPipe:
		return true
	}
	return false
}

// EncodeOptions opciones de serialización.
type EncodeOptions struct {
	IncludeHeaders bool
	Delimiter      string
}

// Decode convierte texto CSV en encabezados y filas (mapa encabezado → valor crudo).
// La primera línea no vacía es el encabezado; las líneas en blanco se omiten.
// Las comillas dobles envuelven campos con delimitadores, comillas o saltos de
// línea; una comilla interna se escapa duplicándola. Devuelve ErrFormat si no
// hay al menos una fila de datos además del encabezado.
func Decode(text, delimiter string) ([]string, []map[string]string, error) {
	if delimiter == "" {
		delimiter = DelimiterComma
	}
	if !ValidDelimiter(delimiter) {
		return nil, nil, fmt.Errorf("%w: delimitador no soportado %q", ErrFormat, delimiter)
	}

	records := parseRecords(text, rune(delimiter[0]))
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%w: se requiere una fila de encabezado y al menos una de datos", ErrFormat)
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// Encode serializa filas en texto CSV. El orden de salida es el de entrada
// (sin ordenamiento implícito). Valores nulos se serializan como cadena vacía;
// los números usan su forma decimal por defecto para que el round-trip sea
// sin pérdidas.
func Encode(headers []string, rows []map[string]any, opts EncodeOptions) string {
	delimiter := opts.Delimiter
	if !ValidDelimiter(delimiter) {
		delimiter = DelimiterComma
	}

	var sb strings.Builder
	if opts.IncludeHeaders {
		for i, h := range headers {
			if i > 0 {
				sb.WriteString(delimiter)
			}
			sb.WriteString(EscapeField(h, delimiter))
		}
		sb.WriteString("\n")
	}
	for _, row := range rows {
		for i, h := range headers {
			if i > 0 {
				sb.WriteString(delimiter)
			}
			sb.WriteString(EscapeField(Stringify(row[h]), delimiter))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// EscapeField envuelve el valor en comillas dobles cuando contiene el
// delimitador, comillas o saltos de línea; las comillas internas se duplican.
func EscapeField(value, delimiter string) string {
	if strings.Contains(value, delimiter) || strings.Contains(value, `"`) ||
		strings.Contains(value, "\n") || strings.Contains(value, "\r") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// Stringify convierte un valor escalar a su representación CSV.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case decimal.Decimal:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// parseRecords recorre el texto campo a campo respetando comillas: dentro de
// un campo entrecomillado el delimitador y el salto de línea son literales.
// Los campos sin comillas se recortan; los entrecomillados se preservan tal cual.
func parseRecords(text string, delimiter rune) [][]string {
	var (
		records  [][]string
		current  []string
		field    strings.Builder
		quoted   bool // el campo actual abrió con comillas
		inQuotes bool
	)

	runes := []rune(text)
	flushField := func() {
		val := field.String()
		if !quoted {
			val = strings.TrimSpace(val)
		}
		current = append(current, val)
		field.Reset()
		quoted = false
	}
	flushRecord := func() {
		flushField()
		// Línea en blanco: un único campo vacío sin comillas
		if len(current) == 1 && current[0] == "" {
			current = nil
			return
		}
		records = append(records, current)
		current = nil
	}

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case inQuotes:
			if c == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					field.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				field.WriteRune(c)
			}
		case c == '"' && strings.TrimSpace(field.String()) == "":
			field.Reset()
			quoted = true
			inQuotes = true
		case c == delimiter:
			flushField()
		case c == '\r':
			// se ignora; el fin de registro lo marca '\n'
		case c == '\n':
			flushRecord()
		default:
			field.WriteRune(c)
		}
	}
	if field.Len() > 0 || quoted || len(current) > 0 {
		flushRecord()
	}
	return records
}
