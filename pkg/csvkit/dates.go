package csvkit

import (
	"strings"
	"time"
)

// DateFormat formatos de fecha soportados en la exportación.
type DateFormat string

const (
	DateFormatUS  DateFormat = "MM/DD/YYYY"
	DateFormatEU  DateFormat = "DD/MM/YYYY"
	DateFormatISO DateFormat = "YYYY-MM-DD"
)

// Valid indica si el formato pertenece al conjunto soportado.
func (f DateFormat) Valid() bool {
	switch f {
	case DateFormatUS, DateFormatEU, DateFormatISO:
		return true
	}
	return false
}

func (f DateFormat) layout() string {
	switch f {
	case DateFormatUS:
		return "01/02/2006"
	case DateFormatEU:
		return "02/01/2006"
	default:
		return "2006-01-02"
	}
}

// Layouts aceptados al interpretar valores de fecha almacenados.
var parseLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// IsDateKey aplica la heurística por nombre de clave: una columna se trata
// como fecha si su clave contiene "date" o coincide con alguna clave extra
// configurada (ej. "lastUpdated"). Es una simplificación deliberada heredada
// del comportamiento original, no una inferencia de tipos.
func IsDateKey(key string, extra ...string) bool {
	lower := strings.ToLower(key)
	if strings.Contains(lower, "date") {
		return true
	}
	for _, e := range extra {
		if key == e {
			return true
		}
	}
	return false
}

// FormatDate renderiza un valor de fecha en el formato pedido. Si el valor no
// se puede interpretar como fecha se devuelve sin cambios.
func FormatDate(value string, format DateFormat) string {
	if !format.Valid() {
		return value
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(format.layout())
		}
	}
	return value
}
