package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/InventoryPro-api/pkg/tabular"
)

func sampleSchema() tabular.Schema {
	return tabular.Schema{
		{Key: "name", Label: "Name", Sortable: true},
		{Key: "category", Label: "Category", Sortable: true},
		{Key: "stock", Label: "Stock", Sortable: true},
		{Key: "notes", Label: "Notes"}, // no ordenable
	}
}

func sampleRows() []tabular.Row {
	return []tabular.Row{
		{"name": "Laptop", "category": "Electronics", "stock": 45, "notes": "a"},
		{"name": "Mouse", "category": "Accessories", "stock": 3, "notes": "b"},
		{"name": "Monitor", "category": "Electronics", "stock": 120, "notes": "c"},
		{"name": "Teclado", "category": "Accessories", "stock": 3, "notes": "d"},
	}
}

func TestSearch_SubcadenaSinDistinguirMayusculas(t *testing.T) {
	out := tabular.Search(sampleRows(), "mo", []string{"name"})
	require.Len(t, out, 2)
	assert.Equal(t, "Mouse", out[0]["name"])
	assert.Equal(t, "Monitor", out[1]["name"])
}

func TestSearch_TerminoVacioDejaPasarTodo(t *testing.T) {
	out := tabular.Search(sampleRows(), "   ", []string{"name"})
	assert.Len(t, out, 4)
}

func TestSearch_VariasClaves(t *testing.T) {
	// "electronics" no está en name pero sí en category
	out := tabular.Search(sampleRows(), "electronics", []string{"name", "category"})
	assert.Len(t, out, 2)
}

func TestFilter_IgualdadExacta(t *testing.T) {
	out := tabular.Filter(sampleRows(), map[string]string{"category": "Electronics"})
	assert.Len(t, out, 2)
}

func TestFilter_PredicadoVacioSeIgnora(t *testing.T) {
	out := tabular.Filter(sampleRows(), map[string]string{"category": ""})
	assert.Len(t, out, 4)
}

func TestFilter_VariosPredicadosSeConjugan(t *testing.T) {
	out := tabular.Filter(sampleRows(), map[string]string{"category": "Accessories", "stock": "3"})
	assert.Len(t, out, 2, "los predicados se combinan con AND")
}

func TestSort_NumericoNoLexicografico(t *testing.T) {
	out := tabular.Sort(sampleRows(), "stock", tabular.SortAsc)
	got := make([]any, len(out))
	for i, r := range out {
		got[i] = r["stock"]
	}
	// lexicográfico daría 120 < 3 < 45; numérico no
	assert.Equal(t, []any{3, 3, 45, 120}, got)
}

func TestSort_DescendenteInvierte(t *testing.T) {
	out := tabular.Sort(sampleRows(), "stock", tabular.SortDesc)
	assert.Equal(t, 120, out[0]["stock"])
	assert.Equal(t, 3, out[3]["stock"])
}

// Con claves iguales el orden relativo original se conserva (orden estable).
func TestSort_EstableConEmpates(t *testing.T) {
	out := tabular.Sort(sampleRows(), "stock", tabular.SortAsc)
	assert.Equal(t, "Mouse", out[0]["name"])
	assert.Equal(t, "Teclado", out[1]["name"])
}

func TestSort_NoMutaLaEntrada(t *testing.T) {
	rows := sampleRows()
	tabular.Sort(rows, "stock", tabular.SortAsc)
	assert.Equal(t, "Laptop", rows[0]["name"], "la colección original no debe reordenarse")
}

func TestApply_ComposicionBusquedaFiltroOrden(t *testing.T) {
	out := tabular.Apply(sampleRows(), sampleSchema(), tabular.Query{
		Search:        "o", // Laptop, Mouse, Monitor, Accessories...
		SearchKeys:    []string{"name"},
		Filters:       map[string]string{"category": "Electronics"},
		SortKey:       "stock",
		SortDirection: tabular.SortDesc,
	})
	require.Len(t, out, 2)
	assert.Equal(t, "Monitor", out[0]["name"])
	assert.Equal(t, "Laptop", out[1]["name"])
}

func TestApply_ClaveNoOrdenableSeIgnora(t *testing.T) {
	out := tabular.Apply(sampleRows(), sampleSchema(), tabular.Query{
		SortKey:       "notes",
		SortDirection: tabular.SortDesc,
	})
	assert.Equal(t, "Laptop", out[0]["name"], "ordenar por una columna no ordenable no debe alterar el orden")
}

func TestSchema_SelectConFallback(t *testing.T) {
	schema := sampleSchema()

	selected := schema.Select([]string{"stock", "name"})
	assert.Equal(t, []string{"name", "stock"}, selected.Keys(), "la selección respeta el orden del esquema")

	all := schema.Select(nil)
	assert.Equal(t, schema.Keys(), all.Keys(), "selección vacía cae en el esquema completo")

	unknown := schema.Select([]string{"no-existe"})
	assert.Empty(t, unknown, "las claves desconocidas simplemente no aparecen")
}
