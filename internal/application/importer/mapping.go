// Package importer implementa la tubería de importación CSV: sugerencia de
// mapeo encabezado → campo del sistema, validación por fila con éxito parcial
// y sesiones efímeras de importación.
package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Claves de campo del sistema para ítems de inventario.
const (
	FieldID            = "id"
	FieldName          = "name"
	FieldCategory      = "category"
	FieldStockLevel    = "stockLevel"
	FieldWarehouse     = "warehouse"
	FieldSKU           = "sku"
	FieldPrice         = "price"
	FieldDescription   = "description"
	FieldMinStockLevel = "minStockLevel"
)

// RequiredFieldKeys campos obligatorios para importar inventario.
var RequiredFieldKeys = []string{FieldName, FieldCategory, FieldStockLevel, FieldWarehouse}

// NumericFieldKeys campos semánticamente numéricos (número no negativo).
var NumericFieldKeys = []string{FieldStockLevel, FieldPrice, FieldMinStockLevel}

// AllFieldKeys campos válidos de destino en el mapeo, en orden de presentación.
var AllFieldKeys = []string{
	FieldID, FieldName, FieldCategory, FieldStockLevel, FieldWarehouse,
	FieldSKU, FieldPrice, FieldDescription, FieldMinStockLevel,
}

// Fragmentos de coincidencia en orden fijo: gana el primero que aparezca como
// subcadena del encabezado normalizado. "Min Stock Level" cae en stockLevel
// porque el fragmento stock precede a min; comportamiento heredado del sistema
// original, siempre corregible por el usuario antes de confirmar.
var fragments = []struct {
	fragment string
	field    string
}{
	{"name", FieldName},
	{"category", FieldCategory},
	{"stock", FieldStockLevel},
	{"warehouse", FieldWarehouse},
	{"sku", FieldSKU},
	{"price", FieldPrice},
	{"description", FieldDescription},
	{"min", FieldMinStockLevel},
}

// SuggestMapping propone, para cada encabezado del CSV, la clave de campo del
// sistema que mejor coincide. Encabezados sin coincidencia quedan con cadena
// vacía. Es un default de mejor esfuerzo, nunca autoritativo: el usuario puede
// sobreescribirlo antes de confirmar la importación.
func SuggestMapping(headers []string) map[string]string {
	mapping := make(map[string]string, len(headers))
	for _, header := range headers {
		normalized := normalizeHeader(header)
		mapping[header] = ""
		for _, f := range fragments {
			if strings.Contains(normalized, f.fragment) {
				mapping[header] = f.field
				break
			}
		}
	}
	return mapping
}

// ValidFieldKey indica si la clave es un destino de mapeo conocido.
func ValidFieldKey(key string) bool {
	for _, k := range AllFieldKeys {
		if k == key {
			return true
		}
	}
	return false
}

// normalizeHeader pasa a minúsculas, elimina espacios y descarta diacríticos
// para que encabezados acentuados (ej. "SKÚ", "Mín Stock") sigan coincidiendo
// con los fragmentos.
func normalizeHeader(header string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, header)
	if err != nil {
		stripped = header
	}
	var sb strings.Builder
	for _, r := range strings.ToLower(stripped) {
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
