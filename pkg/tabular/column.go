// Package tabular ofrece el esquema de columnas y el motor genérico de tablas
// en memoria: ordenamiento estable, búsqueda y filtros discretos sobre filas
// representadas como mapas clave → valor.
package tabular

// Row una fila lógica: mapa de clave de campo a valor escalar.
type Row = map[string]any

// FormatFunc formateador opcional por columna. Recibe el valor de la celda y
// la fila completa, y devuelve el valor a mostrar/serializar.
type FormatFunc func(value any, row Row) string

// Column describe un campo de una grilla de datos. El esquema (lista ordenada
// de columnas) es compartido por el motor de tablas y el códec CSV para que
// ambos coincidan en la identidad de los campos.
type Column struct {
	Key      string // única dentro del esquema
	Label    string
	Sortable bool
	Required bool
	Format   FormatFunc // nil = valor tal cual (con heurística de fechas en exportación)
}

// Schema lista ordenada de columnas.
type Schema []Column

// Keys devuelve las claves en el orden del esquema.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, c := range s {
		keys[i] = c.Key
	}
	return keys
}

// Labels devuelve las etiquetas en el orden del esquema.
func (s Schema) Labels() []string {
	labels := make([]string, len(s))
	for i, c := range s {
		labels[i] = c.Label
	}
	return labels
}

// RequiredKeys devuelve las claves marcadas como obligatorias.
func (s Schema) RequiredKeys() []string {
	var keys []string
	for _, c := range s {
		if c.Required {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// Column busca una columna por clave.
func (s Schema) Column(key string) (Column, bool) {
	for _, c := range s {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Select devuelve el subconjunto de columnas cuyas claves están en selected,
// preservando el orden original del esquema. Con selected vacío devuelve el
// esquema completo (fallback documentado, no un error).
func (s Schema) Select(selected []string) Schema {
	if len(selected) == 0 {
		return s
	}
	wanted := make(map[string]bool, len(selected))
	for _, k := range selected {
		wanted[k] = true
	}
	out := make(Schema, 0, len(selected))
	for _, c := range s {
		if wanted[c.Key] {
			out = append(out, c)
		}
	}
	return out
}
