package tabular

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SortDirection dirección de ordenamiento.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Query consulta combinada sobre una colección en memoria. Se aplica en el
// orden búsqueda → filtros discretos → ordenamiento, recalculado en cada
// invocación (sin índices incrementales; los volúmenes esperados son de pocos
// miles de filas).
type Query struct {
	Search        string
	SearchKeys    []string
	Filters       map[string]string
	SortKey       string
	SortDirection SortDirection
}

// Apply ejecuta la consulta sobre las filas sin mutar la colección de entrada.
func Apply(rows []Row, schema Schema, q Query) []Row {
	out := Search(rows, q.Search, q.SearchKeys)
	out = Filter(out, q.Filters)
	if q.SortKey != "" {
		if col, ok := schema.Column(q.SortKey); ok && col.Sortable {
			out = Sort(out, q.SortKey, q.SortDirection)
		}
	}
	return out
}

// Search filtra por coincidencia de subcadena, sin distinguir mayúsculas,
// contra los valores de las claves indicadas. Término vacío deja pasar todo.
func Search(rows []Row, term string, keys []string) []Row {
	if strings.TrimSpace(term) == "" {
		return append([]Row(nil), rows...)
	}
	needle := strings.ToLower(term)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		for _, k := range keys {
			if strings.Contains(strings.ToLower(stringify(row[k])), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Filter aplica predicados de igualdad exacta por campo. Un predicado con
// valor vacío se ignora (deja pasar).
func Filter(rows []Row, predicates map[string]string) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matches(row, predicates) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row Row, predicates map[string]string) bool {
	for key, expected := range predicates {
		if expected == "" {
			continue
		}
		if stringify(row[key]) != expected {
			return false
		}
	}
	return true
}

// Sort ordena de forma estable por la columna indicada. Precondición del
// llamador: la columna debe estar marcada como Sortable en el esquema
// (Apply lo verifica; Sort directo no).
func Sort(rows []Row, key string, direction SortDirection) []Row {
	out := append([]Row(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i][key], out[j][key])
		if direction == SortDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compare ordena numéricamente cuando ambos valores son numéricos y
// lexicográficamente en caso contrario.
func compare(a, b any) int {
	na, aok := toDecimal(a)
	nb, bok := toDecimal(b)
	if aok && bok {
		return na.Cmp(nb)
	}
	return strings.Compare(stringify(a), stringify(b))
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case float64:
		return decimal.NewFromFloat(val), true
	case decimal.Decimal:
		return val, true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case decimal.Decimal:
		return val.String()
	default:
		if d, ok := toDecimal(v); ok {
			return d.String()
		}
		return fmt.Sprint(val)
	}
}
