package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/InventoryPro-api/internal/application/importer"
)

func TestSuggestMapping_EncabezadosTipicos(t *testing.T) {
	mapping := importer.SuggestMapping([]string{
		"Item ID", "Name", "Category", "Stock Level", "Warehouse", "Price", "SKU", "Description",
	})

	assert.Equal(t, "", mapping["Item ID"], "no hay fragmento para id; queda sin asignar")
	assert.Equal(t, importer.FieldName, mapping["Name"])
	assert.Equal(t, importer.FieldCategory, mapping["Category"])
	assert.Equal(t, importer.FieldStockLevel, mapping["Stock Level"])
	assert.Equal(t, importer.FieldWarehouse, mapping["Warehouse"])
	assert.Equal(t, importer.FieldPrice, mapping["Price"])
	assert.Equal(t, importer.FieldSKU, mapping["SKU"])
	assert.Equal(t, importer.FieldDescription, mapping["Description"])
}

func TestSuggestMapping_SinCoincidenciaQuedaVacio(t *testing.T) {
	mapping := importer.SuggestMapping([]string{"Proveedor", "Name"})
	assert.Equal(t, "", mapping["Proveedor"], "encabezado sin coincidencia queda sin asignar")
	assert.Equal(t, importer.FieldName, mapping["Name"])
}

// "Min Stock Level" contiene el fragmento stock, que precede a min en la
// tabla de coincidencias, así que la sugerencia cae en stockLevel. Es el
// comportamiento heredado; el usuario lo corrige antes de confirmar.
func TestSuggestMapping_MinStockLevelCaeEnStockLevel(t *testing.T) {
	mapping := importer.SuggestMapping([]string{"Min Stock Level"})
	assert.Equal(t, importer.FieldStockLevel, mapping["Min Stock Level"])
}

func TestSuggestMapping_NormalizaMayusculasEspaciosYDiacriticos(t *testing.T) {
	mapping := importer.SuggestMapping([]string{"  STOCK  LEVEL ", "SKÚ", "Descripción... description"})
	assert.Equal(t, importer.FieldStockLevel, mapping["  STOCK  LEVEL "])
	assert.Equal(t, importer.FieldSKU, mapping["SKÚ"])
	assert.Equal(t, importer.FieldDescription, mapping["Descripción... description"])
}

func TestValidFieldKey(t *testing.T) {
	for _, k := range importer.AllFieldKeys {
		assert.True(t, importer.ValidFieldKey(k), "clave %q debe ser válida", k)
	}
	assert.False(t, importer.ValidFieldKey("noExiste"))
	assert.False(t, importer.ValidFieldKey(""))
}
